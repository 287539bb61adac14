package entity

// IncomeInfo rubros de ingreso en wones.
type IncomeInfo struct {
	BusinessIncome int64
	OtherIncome    int64
	CapitalGains   int64
	InterestIncome int64
	DividendIncome int64
}

// Total ingreso bruto: suma de todos los rubros.
func (i IncomeInfo) Total() int64 {
	return i.BusinessIncome + i.OtherIncome + i.CapitalGains + i.InterestIncome + i.DividendIncome
}

// Deductions rubros deducibles. No se aplican topes por rubro.
type Deductions struct {
	Insurance  int64
	Medical    int64
	Education  int64
	Donation   int64
	Retirement int64
	Other      int64
}

// Total deducción total: suma de todos los rubros.
func (d Deductions) Total() int64 {
	return d.Insurance + d.Medical + d.Education + d.Donation + d.Retirement + d.Other
}

// SalesInfo ventas (con IVA incluido) y compras del periodo.
type SalesInfo struct {
	TotalSales      int64
	TotalPurchases  int64
	NonTaxableSales int64
}

// TaxableSales ventas gravadas: ventas totales menos ventas no gravadas.
func (s SalesInfo) TaxableSales() int64 {
	return s.TotalSales - s.NonTaxableSales
}

// SalaryInfo datos salariales mensuales; Bonus es anual.
type SalaryInfo struct {
	MonthlySalary       int64
	Bonus               int64
	NonTaxableAllowance int64
}
