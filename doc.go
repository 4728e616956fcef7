// Package trabalhista computes Brazilian labor-law payments: vacation pay (férias) and the
// thirteenth salary (décimo terceiro), with the INSS and IRRF withholdings they carry.
//
// The core functionalities include:
//   - Tax Engine: progressive INSS contribution and IRRF withholding, computed from the
//     bracket tables of an explicitly selected tax year.
//   - Tax years: immutable tables (INSS brackets, IRRF brackets with their deductions,
//     exemption threshold, dependent deduction, simplified discount and phase-out band)
//     shipped as YAML files, one file per revision of the legislation.
//   - Benefit calculators: vacation pay with the constitutional third and the optional
//     cash allowance, and the thirteenth salary split in two installments.
//
// Every function is pure and amounts are exact decimals: calling a calculator twice with
// the same input yields the same result. This package serves as the foundational logic
// for the `clt` command-line tool.
package trabalhista
