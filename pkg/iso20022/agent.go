package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// ClearingSystemIdentification2Choice selects a clearing system by external
// code or proprietary name.
type ClearingSystemIdentification2Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *ClearingSystemIdentification2Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 5),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

// ClearingSystemIdentification3Choice selects a cash clearing system by
// external code or proprietary name.
type ClearingSystemIdentification3Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *ClearingSystemIdentification3Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 3),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

// ClearingSystemMemberIdentification2 identifies a member of a clearing
// system.
type ClearingSystemMemberIdentification2 struct {
	ClrSysId *ClearingSystemIdentification2Choice `json:"ClrSysId,omitempty" xml:"ClrSysId,omitempty"`
	MmbId    string                               `json:"MmbId" xml:"MmbId"`
}

func (c *ClearingSystemMemberIdentification2) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("clr_sys_id", c.ClrSysId),
		constraint.MinLength("mmb_id", c.MmbId, 1),
		constraint.MaxLength("mmb_id", c.MmbId, 35),
	)
}

// FinancialIdentificationSchemeName1Choice selects a financial institution
// identification scheme.
type FinancialIdentificationSchemeName1Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *FinancialIdentificationSchemeName1Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 4),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

// GenericFinancialIdentification1 identifies a financial institution under a
// named scheme.
type GenericFinancialIdentification1 struct {
	Id      string                                    `json:"Id" xml:"Id"`
	SchmeNm *FinancialIdentificationSchemeName1Choice `json:"SchmeNm,omitempty" xml:"SchmeNm,omitempty"`
	Issr    *string                                   `json:"Issr,omitempty" xml:"Issr,omitempty"`
}

func (g *GenericFinancialIdentification1) Validate() error {
	return constraint.Apply(
		constraint.MinLength("id", g.Id, 1),
		constraint.MaxLength("id", g.Id, 35),
		constraint.ValidIf("schme_nm", g.SchmeNm),
		constraint.MinLengthOpt("issr", g.Issr, 1),
		constraint.MaxLengthOpt("issr", g.Issr, 35),
	)
}

// FinancialInstitutionIdentification18 identifies a financial institution.
type FinancialInstitutionIdentification18 struct {
	BICFI       *string                              `json:"BICFI,omitempty" xml:"BICFI,omitempty"`
	ClrSysMmbId *ClearingSystemMemberIdentification2 `json:"ClrSysMmbId,omitempty" xml:"ClrSysMmbId,omitempty"`
	LEI         *string                              `json:"LEI,omitempty" xml:"LEI,omitempty"`
	Nm          *string                              `json:"Nm,omitempty" xml:"Nm,omitempty"`
	PstlAdr     *PostalAddress24                     `json:"PstlAdr,omitempty" xml:"PstlAdr,omitempty"`
	Othr        *GenericFinancialIdentification1     `json:"Othr,omitempty" xml:"Othr,omitempty"`
}

func (f *FinancialInstitutionIdentification18) Validate() error {
	return constraint.Apply(
		constraint.PatternOpt("bicfi", f.BICFI, PatternAnyBIC),
		constraint.ValidIf("clr_sys_mmb_id", f.ClrSysMmbId),
		constraint.PatternOpt("lei", f.LEI, PatternLEI),
		constraint.MinLengthOpt("nm", f.Nm, 1),
		constraint.MaxLengthOpt("nm", f.Nm, 140),
		constraint.ValidIf("pstl_adr", f.PstlAdr),
		constraint.ValidIf("othr", f.Othr),
	)
}

// BranchData3 identifies a specific branch of a financial institution.
type BranchData3 struct {
	Id      *string          `json:"Id,omitempty" xml:"Id,omitempty"`
	LEI     *string          `json:"LEI,omitempty" xml:"LEI,omitempty"`
	Nm      *string          `json:"Nm,omitempty" xml:"Nm,omitempty"`
	PstlAdr *PostalAddress24 `json:"PstlAdr,omitempty" xml:"PstlAdr,omitempty"`
}

func (b *BranchData3) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("id", b.Id, 1),
		constraint.MaxLengthOpt("id", b.Id, 35),
		constraint.PatternOpt("lei", b.LEI, PatternLEI),
		constraint.MinLengthOpt("nm", b.Nm, 1),
		constraint.MaxLengthOpt("nm", b.Nm, 140),
		constraint.ValidIf("pstl_adr", b.PstlAdr),
	)
}

// BranchAndFinancialInstitutionIdentification6 identifies an agent,
// optionally down to branch level.
type BranchAndFinancialInstitutionIdentification6 struct {
	FinInstnId FinancialInstitutionIdentification18 `json:"FinInstnId" xml:"FinInstnId"`
	BrnchId    *BranchData3                         `json:"BrnchId,omitempty" xml:"BrnchId,omitempty"`
}

func (b *BranchAndFinancialInstitutionIdentification6) Validate() error {
	return constraint.Apply(
		constraint.Valid("fin_instn_id", &b.FinInstnId),
		constraint.ValidIf("brnch_id", b.BrnchId),
	)
}
