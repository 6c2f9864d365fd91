package painparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khorevkp/KK-Tools/internal/parsererror"
)

func init() {
	log = logrus.New()
	log.SetLevel(logrus.DebugLevel)
}

const paymentXML = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pain.001.001.03">
  <CstmrCdtTrfInitn>
    <GrpHdr>
      <MsgId>MSG-PAIN-001</MsgId>
      <NbOfTxs>2</NbOfTxs>
    </GrpHdr>
    <PmtInf>
      <PmtInfId>BATCH-1</PmtInfId>
      <ReqdExctnDt>2023-06-15</ReqdExctnDt>
      <Dbtr>
        <Nm>ACME Trading AG</Nm>
      </Dbtr>
      <DbtrAcct>
        <Id>
          <IBAN>CH9300762011623852957</IBAN>
        </Id>
      </DbtrAcct>
      <CdtTrfTxInf>
        <PmtId>
          <InstrId>INSTR-1</InstrId>
          <EndToEndId>E2E-1</EndToEndId>
        </PmtId>
        <Amt>
          <InstdAmt Ccy="EUR">1500.00</InstdAmt>
        </Amt>
        <CdtrAgt>
          <FinInstnId>
            <BIC>DEUTDEFF</BIC>
          </FinInstnId>
        </CdtrAgt>
        <Cdtr>
          <Nm>Coffee Supplies GmbH</Nm>
          <PstlAdr>
            <Ctry>DE</Ctry>
            <AdrLine>Roasterstrasse 1</AdrLine>
            <AdrLine>60311 Frankfurt</AdrLine>
          </PstlAdr>
        </Cdtr>
        <CdtrAcct>
          <Id>
            <IBAN>DE89370400440532013000</IBAN>
          </Id>
        </CdtrAcct>
        <RmtInf>
          <Ustrd>Invoice 42</Ustrd>
        </RmtInf>
      </CdtTrfTxInf>
      <CdtTrfTxInf>
        <PmtId>
          <EndToEndId>E2E-2</EndToEndId>
        </PmtId>
        <Amt>
          <InstdAmt Ccy="CHF">250.50</InstdAmt>
        </Amt>
        <Cdtr>
          <Nm>Bean Logistics SA</Nm>
        </Cdtr>
        <CdtrAcct>
          <Id>
            <Othr>
              <Id>987654321</Id>
            </Othr>
          </Id>
        </CdtrAcct>
      </CdtTrfTxInf>
    </PmtInf>
    <PmtInf>
      <PmtInfId>BATCH-2</PmtInfId>
      <ReqdExctnDt>2023-06-16</ReqdExctnDt>
      <Dbtr>
        <Nm>ACME Trading AG</Nm>
      </Dbtr>
      <CdtTrfTxInf>
        <Amt>
          <InstdAmt Ccy="EUR">99.99</InstdAmt>
        </Amt>
        <Cdtr>
          <Nm>Filter Paper AG</Nm>
        </Cdtr>
      </CdtTrfTxInf>
    </PmtInf>
  </CstmrCdtTrfInitn>
</Document>`

func TestParsePayments(t *testing.T) {
	payments, err := Parse(paymentXML)
	require.NoError(t, err)
	require.Len(t, payments, 3)

	first := payments[0]
	assert.Equal(t, "Coffee Supplies GmbH", first.Name)
	assert.True(t, first.Amount.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "EUR", first.Currency)
	assert.Equal(t, "Invoice 42", first.Reference)
	assert.Equal(t, "DE", first.Country)
	assert.Equal(t, "Roasterstrasse 1 60311 Frankfurt", first.Address)
	assert.Equal(t, "DE89370400440532013000", first.CreditorAccount)
	assert.Equal(t, "DEUTDEFF", first.BIC)
	assert.Equal(t, "E2E-1", first.EndToEndID)
	assert.Equal(t, "INSTR-1", first.InstructionID)

	second := payments[1]
	assert.Equal(t, "Bean Logistics SA", second.Name)
	assert.Equal(t, "987654321", second.CreditorAccount)
	assert.Empty(t, second.BIC)
	assert.Empty(t, second.Country)
}

func TestParseMergesBatchHeaderIntoPayments(t *testing.T) {
	payments, err := Parse(paymentXML)
	require.NoError(t, err)
	require.Len(t, payments, 3)

	for _, p := range payments[:2] {
		assert.Equal(t, "BATCH-1", p.BatchID)
		assert.Equal(t, "ACME Trading AG", p.DebtorName)
		assert.Equal(t, "CH9300762011623852957", p.DebtorAccount)
		assert.Equal(t, "2023-06-15", p.ExecutionDate)
	}

	third := payments[2]
	assert.Equal(t, "BATCH-2", third.BatchID)
	assert.Equal(t, "2023-06-16", third.ExecutionDate)
	assert.Empty(t, third.DebtorAccount)
}

func TestParseKeepsAddressFieldsPerInstruction(t *testing.T) {
	xml := `<Document><CstmrCdtTrfInitn><PmtInf>
      <PmtInfId>BATCH-1</PmtInfId>
      <CdtTrfTxInf>
        <Amt><InstdAmt Ccy="EUR">10.00</InstdAmt></Amt>
        <Cdtr>
          <Nm>First GmbH</Nm>
          <PstlAdr>
            <Ctry>DE</Ctry>
            <AdrLine>First Street 1</AdrLine>
          </PstlAdr>
        </Cdtr>
      </CdtTrfTxInf>
      <CdtTrfTxInf>
        <Amt><InstdAmt Ccy="EUR">20.00</InstdAmt></Amt>
        <Cdtr>
          <Nm>Second SARL</Nm>
          <PstlAdr>
            <Ctry>FR</Ctry>
            <AdrLine>Second Street 2</AdrLine>
          </PstlAdr>
        </Cdtr>
      </CdtTrfTxInf>
    </PmtInf></CstmrCdtTrfInitn></Document>`

	payments, err := Parse(xml)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	assert.Equal(t, "DE", payments[0].Country)
	assert.Equal(t, "First Street 1", payments[0].Address)
	assert.Equal(t, "FR", payments[1].Country)
	assert.Equal(t, "Second Street 2", payments[1].Address)
}

func TestParseMissingAmountFails(t *testing.T) {
	xml := `<Document><CstmrCdtTrfInitn><PmtInf>
      <PmtInfId>BATCH-X</PmtInfId>
      <CdtTrfTxInf>
        <Cdtr><Nm>No Amount Inc</Nm></Cdtr>
      </CdtTrfTxInf>
    </PmtInf></CstmrCdtTrfInitn></Document>`

	_, err := Parse(xml)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BATCH-X")
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := Parse("<unclosed")
	var malformed *parsererror.MalformedDocumentError
	require.True(t, errors.As(err, &malformed))
}

func TestParseNoBatchesYieldsEmptyList(t *testing.T) {
	payments, err := Parse(`<Document><CstmrCdtTrfInitn/></Document>`)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestParseFileNotFound(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.xml"))
	var notFound *parsererror.NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestParseFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "payments.xml")
	require.NoError(t, os.WriteFile(file, []byte(paymentXML), 0644))

	payments, err := ParseFile(file)
	require.NoError(t, err)
	assert.Len(t, payments, 3)
}

func TestStats(t *testing.T) {
	payments, err := Parse(paymentXML)
	require.NoError(t, err)

	stats := Stats(payments)
	assert.Equal(t, 2, stats.BatchCount)
	assert.Equal(t, 3, stats.PaymentCount)
}
