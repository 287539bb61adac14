package dto

// ── Entradas ──────────────────────────────────────────────────────────────────
// Todas las entradas se normalizan: campos ausentes valen 0 / valores por defecto.

// BusinessInfoInput datos del negocio tal como llegan en la petición.
type BusinessInfoInput struct {
	CompanyName    string `json:"companyName"`
	BusinessNumber string `json:"businessNumber"`
	TaxType        string `json:"taxType"`
	IsSimplified   Flag   `json:"isSimplified"`
	Industry       string `json:"industry"`
}

// IncomeInfoInput rubros de ingreso.
type IncomeInfoInput struct {
	BusinessIncome Amount `json:"businessIncome"`
	OtherIncome    Amount `json:"otherIncome"`
	CapitalGains   Amount `json:"capitalGains"`
	InterestIncome Amount `json:"interestIncome"`
	DividendIncome Amount `json:"dividendIncome"`
}

// DeductionsInput rubros deducibles.
type DeductionsInput struct {
	Insurance  Amount `json:"insurance"`
	Medical    Amount `json:"medical"`
	Education  Amount `json:"education"`
	Donation   Amount `json:"donation"`
	Retirement Amount `json:"retirement"`
	Other      Amount `json:"other"`
}

// SalesInfoInput ventas y compras del periodo de IVA.
type SalesInfoInput struct {
	TotalSales      Amount `json:"totalSales"`
	TotalPurchases  Amount `json:"totalPurchases"`
	NonTaxableSales Amount `json:"nonTaxableSales"`
}

// SalaryInfoInput datos salariales.
type SalaryInfoInput struct {
	MonthlySalary       Amount `json:"monthlySalary"`
	Bonus               Amount `json:"bonus"`
	NonTaxableAllowance Amount `json:"nonTaxableAllowance"`
}

// VATRequest cuerpo de POST /api/calc/vat.
type VATRequest struct {
	SalesInfo    SalesInfoInput    `json:"salesInfo"`
	BusinessInfo BusinessInfoInput `json:"businessInfo"`
}

// IncomeTaxRequest cuerpo de /income, /corporate y /sole.
type IncomeTaxRequest struct {
	IncomeInfo   IncomeInfoInput   `json:"incomeInfo"`
	Deductions   DeductionsInput   `json:"deductions"`
	BusinessInfo BusinessInfoInput `json:"businessInfo"`
}

// LaborTaxRequest cuerpo de POST /api/calc/labor.
type LaborTaxRequest struct {
	SalaryInfo   SalaryInfoInput   `json:"salaryInfo"`
	Deductions   DeductionsInput   `json:"deductions"`
	BusinessInfo BusinessInfoInput `json:"businessInfo"`
}

// RefundRequest cuerpo de POST /api/calc/refund.
type RefundRequest struct {
	Income       Amount            `json:"income"`
	PaidTax      Amount            `json:"paidTax"`
	Deductions   DeductionsInput   `json:"deductions"`
	BusinessInfo BusinessInfoInput `json:"businessInfo"`
}

// SimpleTaxRequest cuerpo de POST /api/calc/tax.
type SimpleTaxRequest struct {
	Income     Amount          `json:"income"`
	Deductions DeductionsInput `json:"deductions"`
}

// ── Salidas ───────────────────────────────────────────────────────────────────
// Los nombres de campo JSON son contrato: los consumidores leen las claves directamente.

// BusinessInfoEcho eco restringido del negocio (income, labor, refund, corporate, sole).
type BusinessInfoEcho struct {
	CompanyName    string `json:"companyName"`
	BusinessNumber string `json:"businessNumber"`
	TaxType        string `json:"taxType"`
}

// BusinessInfoFullEcho eco completo del negocio (solo IVA).
type BusinessInfoFullEcho struct {
	CompanyName    string `json:"companyName"`
	BusinessNumber string `json:"businessNumber"`
	TaxType        string `json:"taxType"`
	IsSimplified   bool   `json:"isSimplified"`
	Industry       string `json:"industry"`
}

// VATSummary resumen del IVA. TaxRate e IndustryRate en porcentaje.
type VATSummary struct {
	TotalSales     int64    `json:"totalSales"`
	TotalPurchases int64    `json:"totalPurchases"`
	TaxableAmount  int64    `json:"taxableAmount"`
	OutputTax      int64    `json:"outputTax"`
	InputTax       int64    `json:"inputTax"`
	VATAmount      int64    `json:"vatAmount"`
	TaxRate        float64  `json:"taxRate"`
	IndustryRate   *float64 `json:"industryRate"`
}

// VATDetails detalle del IVA.
type VATDetails struct {
	TaxableSales    int64 `json:"taxableSales"`
	NonTaxableSales int64 `json:"nonTaxableSales"`
	SupplyAmount    int64 `json:"supplyAmount"`
}

// VATResponse resultado de CalculateVAT.
type VATResponse struct {
	Summary      VATSummary           `json:"summary"`
	Details      VATDetails           `json:"details"`
	BusinessInfo BusinessInfoFullEcho `json:"businessInfo"`
}

// IncomeTaxSummary resumen del impuesto sobre la renta. TaxRate en porcentaje.
type IncomeTaxSummary struct {
	TotalIncome     int64   `json:"totalIncome"`
	TotalDeductions int64   `json:"totalDeductions"`
	TaxableIncome   int64   `json:"taxableIncome"`
	TaxRate         float64 `json:"taxRate"`
	IncomeTax       int64   `json:"incomeTax"`
	LocalIncomeTax  int64   `json:"localIncomeTax"`
	TaxCredit       int64   `json:"taxCredit"`
	FinalTax        int64   `json:"finalTax"`
}

// IncomeDetail eco de los rubros de ingreso.
type IncomeDetail struct {
	BusinessIncome int64 `json:"businessIncome"`
	OtherIncome    int64 `json:"otherIncome"`
	CapitalGains   int64 `json:"capitalGains"`
	InterestIncome int64 `json:"interestIncome"`
	DividendIncome int64 `json:"dividendIncome"`
}

// TotalIncomeDetail eco de ingreso de un solo campo (reembolso).
type TotalIncomeDetail struct {
	Total int64 `json:"total"`
}

// DeductionsDetail eco de las deducciones.
type DeductionsDetail struct {
	Insurance  int64 `json:"insurance"`
	Medical    int64 `json:"medical"`
	Education  int64 `json:"education"`
	Donation   int64 `json:"donation"`
	Retirement int64 `json:"retirement"`
	Other      int64 `json:"other"`
}

// IncomeTaxDetails detalle del impuesto sobre la renta. Income es IncomeDetail o TotalIncomeDetail.
type IncomeTaxDetails struct {
	Income     interface{}      `json:"income"`
	Deductions DeductionsDetail `json:"deductions"`
}

// IncomeTaxResponse resultado de CalculateIncomeTax.
type IncomeTaxResponse struct {
	Summary      IncomeTaxSummary `json:"summary"`
	Details      IncomeTaxDetails `json:"details"`
	BusinessInfo BusinessInfoEcho `json:"businessInfo"`
}

// RefundResponse resultado de CalculateRefund: el de renta más la conciliación.
type RefundResponse struct {
	IncomeTaxResponse
	PaidTax      int64  `json:"paidTax"`
	RefundAmount int64  `json:"refundAmount"`
	Status       string `json:"status"` // "refund" | "owe"
}

// Estados de RefundResponse.
const (
	RefundStatusRefund = "refund"
	RefundStatusOwe    = "owe"
)

// CorporateInfo etiqueta de persona jurídica.
type CorporateInfo struct {
	TaxType      string `json:"taxType"`
	IsSimplified bool   `json:"isSimplified"`
}

// CorporateTaxResponse resultado de CalculateCorporateTax.
type CorporateTaxResponse struct {
	IncomeTaxResponse
	CorporateInfo CorporateInfo `json:"corporateInfo"`
}

// SoleInfo etiqueta de persona natural.
type SoleInfo struct {
	TaxType      string `json:"taxType"`
	IsSimplified bool   `json:"isSimplified"`
	Industry     string `json:"industry"`
}

// SoleTaxResponse resultado de CalculateSoleTax.
type SoleTaxResponse struct {
	IncomeTaxResponse
	SoleInfo SoleInfo `json:"soleInfo"`
}

// LaborSummary resumen anual de la retención salarial.
type LaborSummary struct {
	AnnualSalary     int64 `json:"annualSalary"`
	AnnualBonus      int64 `json:"annualBonus"`
	AnnualNonTaxable int64 `json:"annualNonTaxable"`
	TotalDeductions  int64 `json:"totalDeductions"`
	TaxableIncome    int64 `json:"taxableIncome"`
	IncomeTax        int64 `json:"incomeTax"`
	LocalIncomeTax   int64 `json:"localIncomeTax"`
}

// InsuranceDetail seguros sociales mensuales.
type InsuranceDetail struct {
	NationalPension     int64 `json:"nationalPension"`
	HealthInsurance     int64 `json:"healthInsurance"`
	LongTermCare        int64 `json:"longTermCare"`
	EmploymentInsurance int64 `json:"employmentInsurance"`
	Total               int64 `json:"total"`
}

// LaborDeductionsDetail deducciones aplicadas al salario.
type LaborDeductionsDetail struct {
	Insurance int64 `json:"insurance"`
	Medical   int64 `json:"medical"`
	Education int64 `json:"education"`
	Other     int64 `json:"other"`
	Total     int64 `json:"total"`
}

// LaborDetails detalle de seguros y deducciones.
type LaborDetails struct {
	Insurance  InsuranceDetail       `json:"insurance"`
	Deductions LaborDeductionsDetail `json:"deductions"`
}

// LaborMonthly cifras mensuales.
type LaborMonthly struct {
	NationalPension     int64 `json:"nationalPension"`
	HealthInsurance     int64 `json:"healthInsurance"`
	LongTermCare        int64 `json:"longTermCare"`
	EmploymentInsurance int64 `json:"employmentInsurance"`
	Insurance           int64 `json:"insurance"`
	IncomeTax           int64 `json:"incomeTax"`
	LocalIncomeTax      int64 `json:"localIncomeTax"`
	TotalTax            int64 `json:"totalTax"`
	NetSalary           int64 `json:"netSalary"`
}

// LaborTaxResponse resultado de CalculateLaborTax.
type LaborTaxResponse struct {
	Summary      LaborSummary     `json:"summary"`
	Details      LaborDetails     `json:"details"`
	Monthly      LaborMonthly     `json:"monthly"`
	BusinessInfo BusinessInfoEcho `json:"businessInfo"`
}

// SimpleTaxResponse resultado de CalculateTax (tabla independiente).
type SimpleTaxResponse struct {
	Income           int64  `json:"income"`
	TotalDeductions  int64  `json:"totalDeductions"`
	TaxableIncome    int64  `json:"taxableIncome"`
	Tax              int64  `json:"tax"`
	EffectiveTaxRate string `json:"effectiveTaxRate"` // ej. "12.48%"
}

// ScheduleItem entrada del calendario tributario.
type ScheduleItem struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ScheduleResponse calendario tributario por tipo de contribuyente.
type ScheduleResponse struct {
	TaxType string         `json:"taxType"`
	Items   []ScheduleItem `json:"items"`
}

// VATFilingResponse documento XML de declaración de IVA y su huella.
type VATFilingResponse struct {
	Digest string `json:"digest"` // SHA-256 hex del XML canónico
	XML    string `json:"xml"`
}
