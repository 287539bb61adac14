package taxation

import (
	"github.com/jhoicas/taxhelper-api/internal/application/dto"
	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
)

// NormalizeBusinessInfo aplica los valores por defecto a los campos vacíos.
// TaxType e Industry desconocidos se conservan tal cual; las calculadoras los tratan
// como SOLE y como sector sin tarifa propia.
func NormalizeBusinessInfo(in dto.BusinessInfoInput) entity.BusinessInfo {
	info := entity.BusinessInfo{
		CompanyName:    in.CompanyName,
		BusinessNumber: in.BusinessNumber,
		TaxType:        entity.TaxType(in.TaxType),
		IsSimplified:   bool(in.IsSimplified),
		Industry:       entity.Industry(in.Industry),
	}
	if info.CompanyName == "" {
		info.CompanyName = entity.DefaultCompanyName
	}
	if info.BusinessNumber == "" {
		info.BusinessNumber = entity.DefaultBusinessNumber
	}
	if info.TaxType == "" {
		info.TaxType = entity.DefaultTaxType
	}
	if info.Industry == "" {
		info.Industry = entity.DefaultIndustry
	}
	return info
}

// NormalizeIncomeInfo convierte los rubros de ingreso.
func NormalizeIncomeInfo(in dto.IncomeInfoInput) entity.IncomeInfo {
	return entity.IncomeInfo{
		BusinessIncome: in.BusinessIncome.Int64(),
		OtherIncome:    in.OtherIncome.Int64(),
		CapitalGains:   in.CapitalGains.Int64(),
		InterestIncome: in.InterestIncome.Int64(),
		DividendIncome: in.DividendIncome.Int64(),
	}
}

// NormalizeDeductions convierte las deducciones.
func NormalizeDeductions(in dto.DeductionsInput) entity.Deductions {
	return entity.Deductions{
		Insurance:  in.Insurance.Int64(),
		Medical:    in.Medical.Int64(),
		Education:  in.Education.Int64(),
		Donation:   in.Donation.Int64(),
		Retirement: in.Retirement.Int64(),
		Other:      in.Other.Int64(),
	}
}

// NormalizeSalesInfo convierte ventas y compras.
func NormalizeSalesInfo(in dto.SalesInfoInput) entity.SalesInfo {
	return entity.SalesInfo{
		TotalSales:      in.TotalSales.Int64(),
		TotalPurchases:  in.TotalPurchases.Int64(),
		NonTaxableSales: in.NonTaxableSales.Int64(),
	}
}

// NormalizeSalaryInfo convierte los datos salariales.
func NormalizeSalaryInfo(in dto.SalaryInfoInput) entity.SalaryInfo {
	return entity.SalaryInfo{
		MonthlySalary:       in.MonthlySalary.Int64(),
		Bonus:               in.Bonus.Int64(),
		NonTaxableAllowance: in.NonTaxableAllowance.Int64(),
	}
}
