package hometax

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taxhelper-api/internal/application/dto"
	"github.com/jhoicas/taxhelper-api/internal/application/taxation"
)

func newTestBuilder() *XMLBuilder {
	return &XMLBuilder{now: func() time.Time { return time.Date(2026, 7, 25, 0, 0, 0, 0, time.UTC) }}
}

func vatResult(simplified bool, company string) *dto.VATResponse {
	return taxation.NewDefaultService().CalculateVAT(dto.VATRequest{
		SalesInfo: dto.SalesInfoInput{
			TotalSales:     dto.Amount(110_000_000),
			TotalPurchases: dto.Amount(55_000_000),
		},
		BusinessInfo: dto.BusinessInfoInput{
			CompanyName:    company,
			BusinessNumber: "1234567891",
			TaxType:        "SOLE",
			IsSimplified:   dto.Flag(simplified),
			Industry:       "RETAIL",
		},
	})
}

func TestBuildVATFiling_HuellaSobreXMLCanonico(t *testing.T) {
	out, err := newTestBuilder().BuildVATFiling(context.Background(), vatResult(false, "Hanbit"))
	require.NoError(t, err)

	sum := sha256.Sum256([]byte(out.XML))
	assert.Equal(t, hex.EncodeToString(sum[:]), out.Digest)
	assert.Len(t, out.Digest, 64)
	assert.Contains(t, out.XML, "<BusinessNumber>1234567891</BusinessNumber>")
	assert.NotContains(t, out.XML, "<?xml")
}

func TestBuildVATFiling_Determinista(t *testing.T) {
	b := newTestBuilder()
	a1, err := b.BuildVATFiling(context.Background(), vatResult(false, "Hanbit"))
	require.NoError(t, err)
	a2, err := b.BuildVATFiling(context.Background(), vatResult(false, "Hanbit"))
	require.NoError(t, err)
	assert.Equal(t, a1.Digest, a2.Digest)

	other, err := b.BuildVATFiling(context.Background(), vatResult(false, "Other"))
	require.NoError(t, err)
	assert.NotEqual(t, a1.Digest, other.Digest)
}

func TestBuildVATFiling_Contenido(t *testing.T) {
	res := vatResult(true, "A&B 상사")
	out, err := newTestBuilder().BuildVATFiling(context.Background(), res)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out.XML))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "VATReturn", root.Tag)
	assert.Equal(t, NamespaceVAT, root.SelectAttrValue("xmlns", ""))
	assert.Equal(t, "2026-07-25T00:00:00Z", root.SelectAttrValue("issuedAt", ""))

	assert.Equal(t, "A&B 상사", root.FindElement("Taxpayer/CompanyName").Text())
	assert.Equal(t, "true", root.FindElement("Taxpayer/Simplified").Text())

	vat := root.FindElement("Summary/VATAmount")
	require.NotNil(t, vat)
	assert.Equal(t, "KRW", vat.SelectAttrValue("currency", ""))
	assert.Equal(t, res.Summary.VATAmount, mustParse(t, vat.Text()))
	require.NotNil(t, root.FindElement("Summary/IndustryRate"))
	assert.Equal(t, "1.5", root.FindElement("Summary/IndustryRate").Text())
}

func TestBuildVATFiling_SinTarifaSectorial(t *testing.T) {
	out, err := newTestBuilder().BuildVATFiling(context.Background(), vatResult(false, "Hanbit"))
	require.NoError(t, err)
	assert.NotContains(t, out.XML, "IndustryRate")
	assert.Contains(t, out.XML, "<TaxRate>10</TaxRate>")
}

func TestBuildVATFiling_Nil(t *testing.T) {
	_, err := NewXMLBuilder().BuildVATFiling(context.Background(), nil)
	assert.Error(t, err)
}

func mustParse(t *testing.T, s string) int64 {
	t.Helper()
	var v int64
	for _, c := range s {
		require.True(t, c >= '0' && c <= '9', "no numérico: %q", s)
		v = v*10 + int64(c-'0')
	}
	return v
}
