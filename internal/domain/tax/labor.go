package tax

import "github.com/jhoicas/taxhelper-api/internal/domain/entity"

const monthsPerYear = 12

// MonthlyLabor cifras mensuales de la retención salarial.
type MonthlyLabor struct {
	NationalPension     int64
	HealthInsurance     int64
	LongTermCare        int64
	EmploymentInsurance int64
	Insurance           int64 // suma de los cuatro seguros
	IncomeTax           int64
	LocalIncomeTax      int64
	TotalTax            int64
	NetSalary           int64
}

// AnnualLabor cifras anualizadas.
type AnnualLabor struct {
	Salary         int64
	Bonus          int64
	NonTaxable     int64
	Deductions     int64
	TaxableIncome  int64
	IncomeTax      int64
	LocalIncomeTax int64
}

// LaborDeductions deducciones anuales que aplican al salario. Total incluye los seguros
// sociales anualizados.
type LaborDeductions struct {
	Insurance int64
	Medical   int64
	Education int64
	Other     int64
	Total     int64
}

// LaborTaxAmount resultado completo de la calculadora salarial.
type LaborTaxAmount struct {
	Annual     AnnualLabor
	Monthly    MonthlyLabor
	Deductions LaborDeductions
}

// CalculateLaborTaxAmount deriva los seguros sociales mensuales, anualiza, calcula el
// impuesto anual con la tarifa marginal y lo reparte en doce meses.
// A diferencia de CalculateIncomeTaxAmount no aplica crédito tributario.
// Donation y Retirement no aplican a este cálculo.
func (t RateTable) CalculateLaborTaxAmount(salary entity.SalaryInfo, ded entity.Deductions) LaborTaxAmount {
	var m MonthlyLabor
	m.NationalPension = floorMul(salary.MonthlySalary, t.Insurance.NationalPension)
	m.HealthInsurance = floorMul(salary.MonthlySalary, t.Insurance.HealthInsurance)
	m.LongTermCare = floorMul(m.HealthInsurance, t.Insurance.LongTermCare)
	m.EmploymentInsurance = floorMul(salary.MonthlySalary, t.Insurance.EmploymentInsurance)
	m.Insurance = m.NationalPension + m.HealthInsurance + m.LongTermCare + m.EmploymentInsurance

	deductions := LaborDeductions{
		Insurance: ded.Insurance,
		Medical:   ded.Medical,
		Education: ded.Education,
		Other:     ded.Other,
	}
	deductions.Total = deductions.Insurance + deductions.Medical + deductions.Education +
		deductions.Other + m.Insurance*monthsPerYear

	a := AnnualLabor{
		Salary:     salary.MonthlySalary * monthsPerYear,
		Bonus:      salary.Bonus,
		NonTaxable: salary.NonTaxableAllowance * monthsPerYear,
		Deductions: deductions.Total,
	}
	a.TaxableIncome = a.Salary + a.Bonus - a.NonTaxable - a.Deductions
	a.IncomeTax = floorMul(a.TaxableIncome, t.ResolveRate(a.TaxableIncome))
	a.LocalIncomeTax = floorMul(a.IncomeTax, t.LocalIncomeTax)

	m.IncomeTax = floorDiv(a.IncomeTax, monthsPerYear)
	m.LocalIncomeTax = floorDiv(a.LocalIncomeTax, monthsPerYear)
	m.TotalTax = m.IncomeTax + m.LocalIncomeTax + m.Insurance
	m.NetSalary = salary.MonthlySalary - m.TotalTax

	return LaborTaxAmount{Annual: a, Monthly: m, Deductions: deductions}
}
