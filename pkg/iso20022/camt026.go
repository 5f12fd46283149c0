package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// camt.026.001.07 Unable To Apply.

type UnableToApplyMissingInformation3Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *UnableToApplyMissingInformation3Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 4),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

type UnableToApplyMissing1 struct {
	Tp            UnableToApplyMissingInformation3Choice `json:"Tp" xml:"Tp"`
	AddtlMssngInf *string                                `json:"AddtlMssngInf,omitempty" xml:"AddtlMssngInf,omitempty"`
}

func (u *UnableToApplyMissing1) Validate() error {
	return constraint.Apply(
		constraint.Valid("tp", &u.Tp),
		constraint.MinLengthOpt("addtl_mssng_inf", u.AddtlMssngInf, 1),
		constraint.MaxLengthOpt("addtl_mssng_inf", u.AddtlMssngInf, 140),
	)
}

type UnableToApplyIncorrectInformation4Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *UnableToApplyIncorrectInformation4Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 4),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

type UnableToApplyIncorrect1 struct {
	Tp              UnableToApplyIncorrectInformation4Choice `json:"Tp" xml:"Tp"`
	AddtlIncrrctInf *string                                  `json:"AddtlIncrrctInf,omitempty" xml:"AddtlIncrrctInf,omitempty"`
}

func (u *UnableToApplyIncorrect1) Validate() error {
	return constraint.Apply(
		constraint.Valid("tp", &u.Tp),
		constraint.MinLengthOpt("addtl_incrrct_inf", u.AddtlIncrrctInf, 1),
		constraint.MaxLengthOpt("addtl_incrrct_inf", u.AddtlIncrrctInf, 140),
	)
}

type MissingOrIncorrectInformation3 struct {
	AMLReq     *bool                     `json:"AMLReq,omitempty" xml:"AMLReq,omitempty"`
	MssngInf   []UnableToApplyMissing1   `json:"MssngInf,omitempty" xml:"MssngInf,omitempty"`
	IncrrctInf []UnableToApplyIncorrect1 `json:"IncrrctInf,omitempty" xml:"IncrrctInf,omitempty"`
}

func (m *MissingOrIncorrectInformation3) Validate() error {
	return constraint.Apply(
		constraint.Each("mssng_inf", m.MssngInf),
		constraint.Each("incrrct_inf", m.IncrrctInf),
	)
}

type UnableToApplyJustification3Choice struct {
	AnyInf            *bool                           `json:"AnyInf,omitempty" xml:"AnyInf,omitempty"`
	MssngOrIncrrctInf *MissingOrIncorrectInformation3 `json:"MssngOrIncrrctInf,omitempty" xml:"MssngOrIncrrctInf,omitempty"`
	PssblDplctInstr   *bool                           `json:"PssblDplctInstr,omitempty" xml:"PssblDplctInstr,omitempty"`
}

func (u *UnableToApplyJustification3Choice) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("mssng_or_incrrct_inf", u.MssngOrIncrrctInf),
	)
}

// UnableToApplyV07 opens an investigation case when a received instruction
// cannot be processed as sent.
type UnableToApplyV07 struct {
	Assgnmt     CaseAssignment5                   `json:"Assgnmt" xml:"Assgnmt"`
	Case        *Case5                            `json:"Case,omitempty" xml:"Case,omitempty"`
	Undrlyg     UnderlyingTransaction5Choice      `json:"Undrlyg" xml:"Undrlyg"`
	Justfn      UnableToApplyJustification3Choice `json:"Justfn" xml:"Justfn"`
	SplmtryData []SupplementaryData1              `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (u *UnableToApplyV07) Validate() error {
	return constraint.Apply(
		constraint.Valid("assgnmt", &u.Assgnmt),
		constraint.ValidIf("case", u.Case),
		constraint.Valid("undrlyg", &u.Undrlyg),
		constraint.Valid("justfn", &u.Justfn),
		constraint.Each("splmtry_data", u.SplmtryData),
	)
}
