// Package hometax construye el documento XML de la declaración de IVA a partir del
// resultado del cálculo. El documento se canonicaliza (C14N) antes de calcular su huella
// SHA-256, de modo que dos cálculos iguales producen la misma huella.
package hometax

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/taxhelper-api/internal/application/dto"
	"github.com/jhoicas/taxhelper-api/internal/application/taxation"
)

const (
	// NamespaceVAT espacio de nombres del documento.
	NamespaceVAT = "urn:taxhelper:vat-return:1"
	// DocumentVersion versión del formato.
	DocumentVersion = "1.0"
	currency        = "KRW"
)

// XMLBuilder implementa taxation.FilingBuilder con etree.
type XMLBuilder struct {
	now func() time.Time
}

// NewXMLBuilder construye el builder.
func NewXMLBuilder() *XMLBuilder { return &XMLBuilder{now: time.Now} }

// BuildVATFiling genera el XML canónico de la declaración y su huella.
func (b *XMLBuilder) BuildVATFiling(_ context.Context, res *dto.VATResponse) (*dto.VATFilingResponse, error) {
	if res == nil {
		return nil, fmt.Errorf("hometax: resultado de IVA vacío")
	}

	doc := etree.NewDocument()

	root := doc.CreateElement("VATReturn")
	root.CreateAttr("xmlns", NamespaceVAT)
	root.CreateAttr("version", DocumentVersion)
	root.CreateAttr("issuedAt", b.now().UTC().Format(time.RFC3339))

	taxpayer := root.CreateElement("Taxpayer")
	taxpayer.CreateElement("CompanyName").SetText(res.BusinessInfo.CompanyName)
	taxpayer.CreateElement("BusinessNumber").SetText(res.BusinessInfo.BusinessNumber)
	taxpayer.CreateElement("TaxType").SetText(res.BusinessInfo.TaxType)
	taxpayer.CreateElement("Simplified").SetText(strconv.FormatBool(res.BusinessInfo.IsSimplified))
	taxpayer.CreateElement("Industry").SetText(res.BusinessInfo.Industry)

	s := res.Summary
	summary := root.CreateElement("Summary")
	money(summary, "TotalSales", s.TotalSales)
	money(summary, "TotalPurchases", s.TotalPurchases)
	money(summary, "TaxableAmount", s.TaxableAmount)
	money(summary, "OutputTax", s.OutputTax)
	money(summary, "InputTax", s.InputTax)
	money(summary, "VATAmount", s.VATAmount)
	summary.CreateElement("TaxRate").SetText(rate(s.TaxRate))
	if s.IndustryRate != nil {
		summary.CreateElement("IndustryRate").SetText(rate(*s.IndustryRate))
	}

	d := res.Details
	details := root.CreateElement("Details")
	money(details, "TaxableSales", d.TaxableSales)
	money(details, "NonTaxableSales", d.NonTaxableSales)
	money(details, "SupplyAmount", d.SupplyAmount)

	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("hometax: serializar XML: %w", err)
	}
	canonical, err := canonicalizeXML(raw)
	if err != nil {
		return nil, fmt.Errorf("hometax: canonicalizar XML: %w", err)
	}
	sum := sha256.Sum256(canonical)

	return &dto.VATFilingResponse{
		Digest: hex.EncodeToString(sum[:]),
		XML:    string(canonical),
	}, nil
}

func money(parent *etree.Element, tag string, v int64) {
	el := parent.CreateElement(tag)
	el.CreateAttr("currency", currency)
	el.SetText(strconv.FormatInt(v, 10))
}

func rate(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64)
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

var _ taxation.FilingBuilder = (*XMLBuilder)(nil)
