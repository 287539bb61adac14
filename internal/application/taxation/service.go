package taxation

import (
	"github.com/jhoicas/taxhelper-api/internal/application/dto"
	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/jhoicas/taxhelper-api/internal/domain/tax"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Service casos de uso de cálculo tributario. Es un valor inmutable: la tabla de tarifas
// se inyecta al construirlo y puede compartirse entre goroutines sin sincronización.
type Service struct {
	rates      tax.RateTable
	standalone tax.Brackets
}

// NewService construye el servicio con la tabla de tarifas dada y la tabla de tramos
// del cálculo simple.
func NewService(rates tax.RateTable, standalone tax.Brackets) *Service {
	return &Service{rates: rates, standalone: standalone}
}

// NewDefaultService servicio con las tablas por defecto.
func NewDefaultService() *Service {
	return NewService(tax.DefaultRateTable(), tax.StandaloneBrackets)
}

// CalculateVAT IVA del periodo a partir de ventas, compras y tipo de contribuyente.
func (s *Service) CalculateVAT(in dto.VATRequest) *dto.VATResponse {
	sales := NormalizeSalesInfo(in.SalesInfo)
	info := NormalizeBusinessInfo(in.BusinessInfo)

	rate := s.rates.VATRate(info)
	amount := tax.CalculateVATAmount(tax.VATInput{
		TaxableSales:   sales.TaxableSales(),
		TotalPurchases: sales.TotalPurchases,
		IsSimplified:   info.IsSimplified,
		TaxRate:        rate,
	})

	var industryRate *float64
	if info.IsSimplified {
		r := percent(s.rates.SimplifiedRate(info.Industry))
		industryRate = &r
	}

	return &dto.VATResponse{
		Summary: dto.VATSummary{
			TotalSales:     sales.TotalSales,
			TotalPurchases: sales.TotalPurchases,
			TaxableAmount:  amount.SupplyAmount,
			OutputTax:      amount.OutputTax,
			InputTax:       amount.InputTax,
			VATAmount:      amount.VAT,
			TaxRate:        percent(rate),
			IndustryRate:   industryRate,
		},
		Details: dto.VATDetails{
			TaxableSales:    sales.TaxableSales(),
			NonTaxableSales: sales.NonTaxableSales,
			SupplyAmount:    amount.SupplyAmount,
		},
		BusinessInfo: dto.BusinessInfoFullEcho{
			CompanyName:    info.CompanyName,
			BusinessNumber: info.BusinessNumber,
			TaxType:        string(info.TaxType),
			IsSimplified:   info.IsSimplified,
			Industry:       string(info.Industry),
		},
	}
}

// CalculateIncomeTax impuesto sobre la renta con tarifa marginal, impuesto local y crédito.
func (s *Service) CalculateIncomeTax(in dto.IncomeTaxRequest) *dto.IncomeTaxResponse {
	income := NormalizeIncomeInfo(in.IncomeInfo)
	return s.incomeTax(income.Total(), incomeDetail(income), NormalizeDeductions(in.Deductions), NormalizeBusinessInfo(in.BusinessInfo))
}

// CalculateRefund compara el impuesto ya pagado con el impuesto final del ingreso declarado.
// RefundAmount positivo o cero significa devolución; negativo, saldo a pagar.
func (s *Service) CalculateRefund(in dto.RefundRequest) *dto.RefundResponse {
	income := in.Income.Int64()
	base := s.incomeTax(income, dto.TotalIncomeDetail{Total: income}, NormalizeDeductions(in.Deductions), NormalizeBusinessInfo(in.BusinessInfo))

	paid := in.PaidTax.Int64()
	refund := paid - base.Summary.FinalTax
	status := dto.RefundStatusOwe
	if refund >= 0 {
		status = dto.RefundStatusRefund
	}
	return &dto.RefundResponse{
		IncomeTaxResponse: *base,
		PaidTax:           paid,
		RefundAmount:      refund,
		Status:            status,
	}
}

// CalculateCorporateTax impuesto sobre la renta etiquetado como persona jurídica.
// No aplica tarifas corporativas propias.
func (s *Service) CalculateCorporateTax(in dto.IncomeTaxRequest) *dto.CorporateTaxResponse {
	return &dto.CorporateTaxResponse{
		IncomeTaxResponse: *s.CalculateIncomeTax(in),
		CorporateInfo: dto.CorporateInfo{
			TaxType:      string(entity.TaxTypeCorporation),
			IsSimplified: false,
		},
	}
}

// CalculateSoleTax impuesto sobre la renta etiquetado como persona natural.
func (s *Service) CalculateSoleTax(in dto.IncomeTaxRequest) *dto.SoleTaxResponse {
	info := NormalizeBusinessInfo(in.BusinessInfo)
	return &dto.SoleTaxResponse{
		IncomeTaxResponse: *s.CalculateIncomeTax(in),
		SoleInfo: dto.SoleInfo{
			TaxType:      string(entity.TaxTypeSole),
			IsSimplified: info.IsSimplified,
			Industry:     string(info.Industry),
		},
	}
}

// CalculateLaborTax seguros sociales y retención mensual sobre el salario.
func (s *Service) CalculateLaborTax(in dto.LaborTaxRequest) *dto.LaborTaxResponse {
	info := NormalizeBusinessInfo(in.BusinessInfo)
	r := s.rates.CalculateLaborTaxAmount(NormalizeSalaryInfo(in.SalaryInfo), NormalizeDeductions(in.Deductions))

	return &dto.LaborTaxResponse{
		Summary: dto.LaborSummary{
			AnnualSalary:     r.Annual.Salary,
			AnnualBonus:      r.Annual.Bonus,
			AnnualNonTaxable: r.Annual.NonTaxable,
			TotalDeductions:  r.Annual.Deductions,
			TaxableIncome:    r.Annual.TaxableIncome,
			IncomeTax:        r.Annual.IncomeTax,
			LocalIncomeTax:   r.Annual.LocalIncomeTax,
		},
		Details: dto.LaborDetails{
			Insurance: dto.InsuranceDetail{
				NationalPension:     r.Monthly.NationalPension,
				HealthInsurance:     r.Monthly.HealthInsurance,
				LongTermCare:        r.Monthly.LongTermCare,
				EmploymentInsurance: r.Monthly.EmploymentInsurance,
				Total:               r.Monthly.Insurance,
			},
			Deductions: dto.LaborDeductionsDetail{
				Insurance: r.Deductions.Insurance,
				Medical:   r.Deductions.Medical,
				Education: r.Deductions.Education,
				Other:     r.Deductions.Other,
				Total:     r.Deductions.Total,
			},
		},
		Monthly: dto.LaborMonthly{
			NationalPension:     r.Monthly.NationalPension,
			HealthInsurance:     r.Monthly.HealthInsurance,
			LongTermCare:        r.Monthly.LongTermCare,
			EmploymentInsurance: r.Monthly.EmploymentInsurance,
			Insurance:           r.Monthly.Insurance,
			IncomeTax:           r.Monthly.IncomeTax,
			LocalIncomeTax:      r.Monthly.LocalIncomeTax,
			TotalTax:            r.Monthly.TotalTax,
			NetSalary:           r.Monthly.NetSalary,
		},
		BusinessInfo: echo(info),
	}
}

// CalculateTax cálculo simple con su propia tabla de tramos: renta gravable nunca negativa,
// impuesto acumulado por tramos redondeado al won y tasa efectiva con dos decimales.
// Con ingreso cero la tasa efectiva es "NaN%".
func (s *Service) CalculateTax(in dto.SimpleTaxRequest) *dto.SimpleTaxResponse {
	income := in.Income.Int64()
	deductions := NormalizeDeductions(in.Deductions).Total()
	taxable := max(0, income-deductions)
	exact := s.standalone.Progressive(taxable)

	effective := "NaN%"
	if income != 0 {
		effective = exact.Div(decimal.NewFromInt(income)).Mul(hundred).StringFixed(2) + "%"
	}
	return &dto.SimpleTaxResponse{
		Income:           income,
		TotalDeductions:  deductions,
		TaxableIncome:    taxable,
		Tax:              exact.Round(0).IntPart(),
		EffectiveTaxRate: effective,
	}
}

// Schedule calendario de declaraciones del tipo de contribuyente.
func (s *Service) Schedule(taxType string) *dto.ScheduleResponse {
	tt := entity.TaxType(taxType)
	if tt != entity.TaxTypeCorporation {
		tt = entity.TaxTypeSole
	}
	entries := tax.Schedule(tt)
	items := make([]dto.ScheduleItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ScheduleItem{Type: string(e.Kind), Title: e.Title, Description: e.Description})
	}
	return &dto.ScheduleResponse{TaxType: string(tt), Items: items}
}

func (s *Service) incomeTax(totalIncome int64, income interface{}, ded entity.Deductions, info entity.BusinessInfo) *dto.IncomeTaxResponse {
	totalDeductions := ded.Total()
	rate := s.rates.ResolveRate(totalIncome - totalDeductions)
	r := s.rates.CalculateIncomeTaxAmount(totalIncome, totalDeductions, rate)

	return &dto.IncomeTaxResponse{
		Summary: dto.IncomeTaxSummary{
			TotalIncome:     totalIncome,
			TotalDeductions: totalDeductions,
			TaxableIncome:   r.TaxableIncome,
			TaxRate:         percent(rate),
			IncomeTax:       r.IncomeTax,
			LocalIncomeTax:  r.LocalIncomeTax,
			TaxCredit:       r.TaxCredit,
			FinalTax:        r.FinalTax,
		},
		Details: dto.IncomeTaxDetails{
			Income: income,
			Deductions: dto.DeductionsDetail{
				Insurance:  ded.Insurance,
				Medical:    ded.Medical,
				Education:  ded.Education,
				Donation:   ded.Donation,
				Retirement: ded.Retirement,
				Other:      ded.Other,
			},
		},
		BusinessInfo: echo(info),
	}
}

func incomeDetail(i entity.IncomeInfo) dto.IncomeDetail {
	return dto.IncomeDetail{
		BusinessIncome: i.BusinessIncome,
		OtherIncome:    i.OtherIncome,
		CapitalGains:   i.CapitalGains,
		InterestIncome: i.InterestIncome,
		DividendIncome: i.DividendIncome,
	}
}

func echo(info entity.BusinessInfo) dto.BusinessInfoEcho {
	return dto.BusinessInfoEcho{
		CompanyName:    info.CompanyName,
		BusinessNumber: info.BusinessNumber,
		TaxType:        string(info.TaxType),
	}
}

// percent tarifa expresada en porcentaje (0.15 → 15).
func percent(rate decimal.Decimal) float64 {
	return rate.Mul(hundred).InexactFloat64()
}
