package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// ActiveCurrencyAndAmount is an amount of money in a currency that is
// currently active. Amounts are never negative.
type ActiveCurrencyAndAmount struct {
	Ccy   string  `json:"Ccy" xml:"Ccy,attr"`
	Value float64 `json:"Amt" xml:",chardata"`
}

func (a *ActiveCurrencyAndAmount) Validate() error {
	return constraint.Apply(
		constraint.Pattern("ccy", a.Ccy, PatternCurrencyCode),
		constraint.Min("value", a.Value, 0),
	)
}

// ActiveOrHistoricCurrencyAndAmount is an amount of money in a currency that
// is or was active.
type ActiveOrHistoricCurrencyAndAmount struct {
	Ccy   string  `json:"Ccy" xml:"Ccy,attr"`
	Value float64 `json:"Amt" xml:",chardata"`
}

func (a *ActiveOrHistoricCurrencyAndAmount) Validate() error {
	return constraint.Apply(
		constraint.Pattern("ccy", a.Ccy, PatternCurrencyCode),
		constraint.Min("value", a.Value, 0),
	)
}

// EquivalentAmount2 is an amount to be transferred expressed in another
// currency than the one settled.
type EquivalentAmount2 struct {
	Amt      ActiveOrHistoricCurrencyAndAmount `json:"Amt" xml:"Amt"`
	CcyOfTrf string                            `json:"CcyOfTrf" xml:"CcyOfTrf"`
}

func (e *EquivalentAmount2) Validate() error {
	return constraint.Apply(
		constraint.Valid("amt", &e.Amt),
		constraint.Pattern("ccy_of_trf", e.CcyOfTrf, PatternCurrencyCode),
	)
}

type AmountType4Choice struct {
	InstdAmt *ActiveOrHistoricCurrencyAndAmount `json:"InstdAmt,omitempty" xml:"InstdAmt,omitempty"`
	EqvtAmt  *EquivalentAmount2                 `json:"EqvtAmt,omitempty" xml:"EqvtAmt,omitempty"`
}

func (c *AmountType4Choice) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("instd_amt", c.InstdAmt),
		constraint.ValidIf("eqvt_amt", c.EqvtAmt),
	)
}

// AmountAndDirection35 is a non-negative amount with a credit or debit
// direction.
type AmountAndDirection35 struct {
	Amt       float64         `json:"Amt" xml:"Amt"`
	CdtDbtInd CreditDebitCode `json:"CdtDbtInd" xml:"CdtDbtInd"`
}

func (a *AmountAndDirection35) Validate() error {
	return constraint.Apply(
		constraint.Min("amt", a.Amt, 0),
		constraint.Valid("cdt_dbt_ind", &a.CdtDbtInd),
	)
}
