package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// AddressType3Choice selects between a coded and a proprietary address type.
type AddressType3Choice struct {
	Cd    *AddressType2Code        `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *GenericIdentification30 `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *AddressType3Choice) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("cd", c.Cd),
		constraint.ValidIf("prtry", c.Prtry),
	)
}

// PostalAddress24 is a structured postal address.
type PostalAddress24 struct {
	AdrTp       *AddressType3Choice `json:"AdrTp,omitempty" xml:"AdrTp,omitempty"`
	Dept        *string             `json:"Dept,omitempty" xml:"Dept,omitempty"`
	SubDept     *string             `json:"SubDept,omitempty" xml:"SubDept,omitempty"`
	StrtNm      *string             `json:"StrtNm,omitempty" xml:"StrtNm,omitempty"`
	BldgNb      *string             `json:"BldgNb,omitempty" xml:"BldgNb,omitempty"`
	BldgNm      *string             `json:"BldgNm,omitempty" xml:"BldgNm,omitempty"`
	Flr         *string             `json:"Flr,omitempty" xml:"Flr,omitempty"`
	PstBx       *string             `json:"PstBx,omitempty" xml:"PstBx,omitempty"`
	Room        *string             `json:"Room,omitempty" xml:"Room,omitempty"`
	PstCd       *string             `json:"PstCd,omitempty" xml:"PstCd,omitempty"`
	TwnNm       *string             `json:"TwnNm,omitempty" xml:"TwnNm,omitempty"`
	TwnLctnNm   *string             `json:"TwnLctnNm,omitempty" xml:"TwnLctnNm,omitempty"`
	DstrctNm    *string             `json:"DstrctNm,omitempty" xml:"DstrctNm,omitempty"`
	CtrySubDvsn *string             `json:"CtrySubDvsn,omitempty" xml:"CtrySubDvsn,omitempty"`
	Ctry        *string             `json:"Ctry,omitempty" xml:"Ctry,omitempty"`
	AdrLine     []string            `json:"AdrLine,omitempty" xml:"AdrLine,omitempty"`
}

func (a *PostalAddress24) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("adr_tp", a.AdrTp),
		constraint.MinLengthOpt("dept", a.Dept, 1),
		constraint.MaxLengthOpt("dept", a.Dept, 70),
		constraint.MinLengthOpt("sub_dept", a.SubDept, 1),
		constraint.MaxLengthOpt("sub_dept", a.SubDept, 70),
		constraint.MinLengthOpt("strt_nm", a.StrtNm, 1),
		constraint.MaxLengthOpt("strt_nm", a.StrtNm, 70),
		constraint.MinLengthOpt("bldg_nb", a.BldgNb, 1),
		constraint.MaxLengthOpt("bldg_nb", a.BldgNb, 16),
		constraint.MinLengthOpt("bldg_nm", a.BldgNm, 1),
		constraint.MaxLengthOpt("bldg_nm", a.BldgNm, 35),
		constraint.MinLengthOpt("flr", a.Flr, 1),
		constraint.MaxLengthOpt("flr", a.Flr, 70),
		constraint.MinLengthOpt("pst_bx", a.PstBx, 1),
		constraint.MaxLengthOpt("pst_bx", a.PstBx, 16),
		constraint.MinLengthOpt("room", a.Room, 1),
		constraint.MaxLengthOpt("room", a.Room, 70),
		constraint.MinLengthOpt("pst_cd", a.PstCd, 1),
		constraint.MaxLengthOpt("pst_cd", a.PstCd, 16),
		constraint.MinLengthOpt("twn_nm", a.TwnNm, 1),
		constraint.MaxLengthOpt("twn_nm", a.TwnNm, 35),
		constraint.MinLengthOpt("twn_lctn_nm", a.TwnLctnNm, 1),
		constraint.MaxLengthOpt("twn_lctn_nm", a.TwnLctnNm, 35),
		constraint.MinLengthOpt("dstrct_nm", a.DstrctNm, 1),
		constraint.MaxLengthOpt("dstrct_nm", a.DstrctNm, 35),
		constraint.MinLengthOpt("ctry_sub_dvsn", a.CtrySubDvsn, 1),
		constraint.MaxLengthOpt("ctry_sub_dvsn", a.CtrySubDvsn, 35),
		constraint.PatternOpt("ctry", a.Ctry, PatternCountryCode),
		constraint.LengthEach("adr_line", a.AdrLine, 1, 70),
	)
}

// OtherContact1 is a contact detail expressed in a non-standard channel.
type OtherContact1 struct {
	ChanlTp string  `json:"ChanlTp" xml:"ChanlTp"`
	Id      *string `json:"Id,omitempty" xml:"Id,omitempty"`
}

func (o *OtherContact1) Validate() error {
	return constraint.Apply(
		constraint.MinLength("chanl_tp", o.ChanlTp, 1),
		constraint.MaxLength("chanl_tp", o.ChanlTp, 4),
		constraint.MinLengthOpt("id", o.Id, 1),
		constraint.MaxLengthOpt("id", o.Id, 128),
	)
}

// Contact4 holds the contact details of a person or department.
type Contact4 struct {
	NmPrfx    *NamePrefix2Code             `json:"NmPrfx,omitempty" xml:"NmPrfx,omitempty"`
	Nm        *string                      `json:"Nm,omitempty" xml:"Nm,omitempty"`
	PhneNb    *string                      `json:"PhneNb,omitempty" xml:"PhneNb,omitempty"`
	MobNb     *string                      `json:"MobNb,omitempty" xml:"MobNb,omitempty"`
	FaxNb     *string                      `json:"FaxNb,omitempty" xml:"FaxNb,omitempty"`
	EmailAdr  *string                      `json:"EmailAdr,omitempty" xml:"EmailAdr,omitempty"`
	EmailPurp *string                      `json:"EmailPurp,omitempty" xml:"EmailPurp,omitempty"`
	JobTitl   *string                      `json:"JobTitl,omitempty" xml:"JobTitl,omitempty"`
	Rspnsblty *string                      `json:"Rspnsblty,omitempty" xml:"Rspnsblty,omitempty"`
	Dept      *string                      `json:"Dept,omitempty" xml:"Dept,omitempty"`
	Othr      []OtherContact1              `json:"Othr,omitempty" xml:"Othr,omitempty"`
	PrefrdMtd *PreferredContactMethod1Code `json:"PrefrdMtd,omitempty" xml:"PrefrdMtd,omitempty"`
}

func (c *Contact4) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("nm_prfx", c.NmPrfx),
		constraint.MinLengthOpt("nm", c.Nm, 1),
		constraint.MaxLengthOpt("nm", c.Nm, 140),
		constraint.PatternOpt("phne_nb", c.PhneNb, PatternPhoneNumber),
		constraint.PatternOpt("mob_nb", c.MobNb, PatternPhoneNumber),
		constraint.PatternOpt("fax_nb", c.FaxNb, PatternPhoneNumber),
		constraint.MinLengthOpt("email_adr", c.EmailAdr, 1),
		constraint.MaxLengthOpt("email_adr", c.EmailAdr, 2048),
		constraint.MinLengthOpt("email_purp", c.EmailPurp, 1),
		constraint.MaxLengthOpt("email_purp", c.EmailPurp, 35),
		constraint.MinLengthOpt("job_titl", c.JobTitl, 1),
		constraint.MaxLengthOpt("job_titl", c.JobTitl, 35),
		constraint.MinLengthOpt("rspnsblty", c.Rspnsblty, 1),
		constraint.MaxLengthOpt("rspnsblty", c.Rspnsblty, 35),
		constraint.MinLengthOpt("dept", c.Dept, 1),
		constraint.MaxLengthOpt("dept", c.Dept, 70),
		constraint.Each("othr", c.Othr),
		constraint.ValidIf("prefrd_mtd", c.PrefrdMtd),
	)
}

// DateAndPlaceOfBirth1 records the birth date and place of a person.
type DateAndPlaceOfBirth1 struct {
	BirthDt     string  `json:"BirthDt" xml:"BirthDt"`
	PrvcOfBirth *string `json:"PrvcOfBirth,omitempty" xml:"PrvcOfBirth,omitempty"`
	CityOfBirth string  `json:"CityOfBirth" xml:"CityOfBirth"`
	CtryOfBirth string  `json:"CtryOfBirth" xml:"CtryOfBirth"`
}

func (d *DateAndPlaceOfBirth1) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("prvc_of_birth", d.PrvcOfBirth, 1),
		constraint.MaxLengthOpt("prvc_of_birth", d.PrvcOfBirth, 35),
		constraint.MinLength("city_of_birth", d.CityOfBirth, 1),
		constraint.MaxLength("city_of_birth", d.CityOfBirth, 35),
		constraint.Pattern("ctry_of_birth", d.CtryOfBirth, PatternCountryCode),
	)
}

// GenericIdentification30 is an identification scheme with an exact
// four-character identifier.
type GenericIdentification30 struct {
	Id      string  `json:"Id" xml:"Id"`
	Issr    string  `json:"Issr" xml:"Issr"`
	SchmeNm *string `json:"SchmeNm,omitempty" xml:"SchmeNm,omitempty"`
}

func (g *GenericIdentification30) Validate() error {
	return constraint.Apply(
		constraint.Pattern("id", g.Id, PatternExact4AlphaNumeric),
		constraint.MinLength("issr", g.Issr, 1),
		constraint.MaxLength("issr", g.Issr, 35),
		constraint.MinLengthOpt("schme_nm", g.SchmeNm, 1),
		constraint.MaxLengthOpt("schme_nm", g.SchmeNm, 35),
	)
}

// GenericIdentification36 is a proprietary identification with a mandatory
// issuer.
type GenericIdentification36 struct {
	Id      string  `json:"Id" xml:"Id"`
	Issr    string  `json:"Issr" xml:"Issr"`
	SchmeNm *string `json:"SchmeNm,omitempty" xml:"SchmeNm,omitempty"`
}

func (g *GenericIdentification36) Validate() error {
	return constraint.Apply(
		constraint.MinLength("id", g.Id, 1),
		constraint.MaxLength("id", g.Id, 35),
		constraint.MinLength("issr", g.Issr, 1),
		constraint.MaxLength("issr", g.Issr, 35),
		constraint.MinLengthOpt("schme_nm", g.SchmeNm, 1),
		constraint.MaxLengthOpt("schme_nm", g.SchmeNm, 35),
	)
}

// OrganisationIdentificationSchemeName1Choice selects an organisation
// identification scheme by code or proprietary name.
type OrganisationIdentificationSchemeName1Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *OrganisationIdentificationSchemeName1Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 4),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

// GenericOrganisationIdentification1 identifies an organisation under a
// named scheme.
type GenericOrganisationIdentification1 struct {
	Id      string                                       `json:"Id" xml:"Id"`
	SchmeNm *OrganisationIdentificationSchemeName1Choice `json:"SchmeNm,omitempty" xml:"SchmeNm,omitempty"`
	Issr    *string                                      `json:"Issr,omitempty" xml:"Issr,omitempty"`
}

func (g *GenericOrganisationIdentification1) Validate() error {
	return constraint.Apply(
		constraint.MinLength("id", g.Id, 1),
		constraint.MaxLength("id", g.Id, 35),
		constraint.ValidIf("schme_nm", g.SchmeNm),
		constraint.MinLengthOpt("issr", g.Issr, 1),
		constraint.MaxLengthOpt("issr", g.Issr, 35),
	)
}

// PersonIdentificationSchemeName1Choice selects a person identification
// scheme by code or proprietary name.
type PersonIdentificationSchemeName1Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *PersonIdentificationSchemeName1Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 4),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

// GenericPersonIdentification1 identifies a person under a named scheme.
type GenericPersonIdentification1 struct {
	Id      string                                 `json:"Id" xml:"Id"`
	SchmeNm *PersonIdentificationSchemeName1Choice `json:"SchmeNm,omitempty" xml:"SchmeNm,omitempty"`
	Issr    *string                                `json:"Issr,omitempty" xml:"Issr,omitempty"`
}

func (g *GenericPersonIdentification1) Validate() error {
	return constraint.Apply(
		constraint.MinLength("id", g.Id, 1),
		constraint.MaxLength("id", g.Id, 35),
		constraint.ValidIf("schme_nm", g.SchmeNm),
		constraint.MinLengthOpt("issr", g.Issr, 1),
		constraint.MaxLengthOpt("issr", g.Issr, 35),
	)
}

// OrganisationIdentification29 identifies an organisation by BIC, LEI, or a
// proprietary scheme.
type OrganisationIdentification29 struct {
	AnyBIC *string                              `json:"AnyBIC,omitempty" xml:"AnyBIC,omitempty"`
	LEI    *string                              `json:"LEI,omitempty" xml:"LEI,omitempty"`
	Othr   []GenericOrganisationIdentification1 `json:"Othr,omitempty" xml:"Othr,omitempty"`
}

func (o *OrganisationIdentification29) Validate() error {
	return constraint.Apply(
		constraint.PatternOpt("any_bic", o.AnyBIC, PatternAnyBIC),
		constraint.PatternOpt("lei", o.LEI, PatternLEI),
		constraint.Each("othr", o.Othr),
	)
}

// PersonIdentification13 identifies a person by birth data or a proprietary
// scheme.
type PersonIdentification13 struct {
	DtAndPlcOfBirth *DateAndPlaceOfBirth1          `json:"DtAndPlcOfBirth,omitempty" xml:"DtAndPlcOfBirth,omitempty"`
	Othr            []GenericPersonIdentification1 `json:"Othr,omitempty" xml:"Othr,omitempty"`
}

func (p *PersonIdentification13) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("dt_and_plc_of_birth", p.DtAndPlcOfBirth),
		constraint.Each("othr", p.Othr),
	)
}

// Party38Choice selects between an organisation and a private person.
type Party38Choice struct {
	OrgId  *OrganisationIdentification29 `json:"OrgId,omitempty" xml:"OrgId,omitempty"`
	PrvtId *PersonIdentification13       `json:"PrvtId,omitempty" xml:"PrvtId,omitempty"`
}

func (c *Party38Choice) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("org_id", c.OrgId),
		constraint.ValidIf("prvt_id", c.PrvtId),
	)
}

// PartyIdentification135 identifies a party by name, address, and scheme
// identification.
type PartyIdentification135 struct {
	Nm        *string          `json:"Nm,omitempty" xml:"Nm,omitempty"`
	PstlAdr   *PostalAddress24 `json:"PstlAdr,omitempty" xml:"PstlAdr,omitempty"`
	Id        *Party38Choice   `json:"Id,omitempty" xml:"Id,omitempty"`
	CtryOfRes *string          `json:"CtryOfRes,omitempty" xml:"CtryOfRes,omitempty"`
	CtctDtls  *Contact4        `json:"CtctDtls,omitempty" xml:"CtctDtls,omitempty"`
}

func (p *PartyIdentification135) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("nm", p.Nm, 1),
		constraint.MaxLengthOpt("nm", p.Nm, 140),
		constraint.ValidIf("pstl_adr", p.PstlAdr),
		constraint.ValidIf("id", p.Id),
		constraint.PatternOpt("ctry_of_res", p.CtryOfRes, PatternCountryCode),
		constraint.ValidIf("ctct_dtls", p.CtctDtls),
	)
}

// Party40Choice selects between a party and an agent.
type Party40Choice struct {
	Pty *PartyIdentification135                       `json:"Pty,omitempty" xml:"Pty,omitempty"`
	Agt *BranchAndFinancialInstitutionIdentification6 `json:"Agt,omitempty" xml:"Agt,omitempty"`
}

func (c *Party40Choice) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("pty", c.Pty),
		constraint.ValidIf("agt", c.Agt),
	)
}

// Party44Choice selects between an organisation party and a financial
// institution, as used in the business application header.
type Party44Choice struct {
	OrgId *PartyIdentification135                       `json:"OrgId,omitempty" xml:"OrgId,omitempty"`
	FIId  *BranchAndFinancialInstitutionIdentification6 `json:"FIId,omitempty" xml:"FIId,omitempty"`
}

func (c *Party44Choice) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("org_id", c.OrgId),
		constraint.ValidIf("fi_id", c.FIId),
	)
}

// PartyIdentification120Choice selects a party identification used by
// administrative messages.
type PartyIdentification120Choice struct {
	AnyBIC   *string                  `json:"AnyBIC,omitempty" xml:"AnyBIC,omitempty"`
	PrtryId  *GenericIdentification36 `json:"PrtryId,omitempty" xml:"PrtryId,omitempty"`
	NmAndAdr *NameAndAddress5         `json:"NmAndAdr,omitempty" xml:"NmAndAdr,omitempty"`
}

func (c *PartyIdentification120Choice) Validate() error {
	return constraint.Apply(
		constraint.PatternOpt("any_bic", c.AnyBIC, PatternAnyBIC),
		constraint.ValidIf("prtry_id", c.PrtryId),
		constraint.ValidIf("nm_and_adr", c.NmAndAdr),
	)
}

// PartyIdentification136 pairs a party identification with an optional LEI.
type PartyIdentification136 struct {
	Id  PartyIdentification120Choice `json:"Id" xml:"Id"`
	LEI *string                      `json:"LEI,omitempty" xml:"LEI,omitempty"`
}

func (p *PartyIdentification136) Validate() error {
	return constraint.Apply(
		constraint.Valid("id", &p.Id),
		constraint.PatternOpt("lei", p.LEI, PatternLEI),
	)
}

// NameAndAddress5 pairs a name with an optional unstructured address.
type NameAndAddress5 struct {
	Nm  string          `json:"Nm" xml:"Nm"`
	Adr *PostalAddress1 `json:"Adr,omitempty" xml:"Adr,omitempty"`
}

func (n *NameAndAddress5) Validate() error {
	return constraint.Apply(
		constraint.MinLength("nm", n.Nm, 1),
		constraint.MaxLength("nm", n.Nm, 350),
		constraint.ValidIf("adr", n.Adr),
	)
}

// PostalAddress1 is the older, flatter postal address shape used by
// administrative messages.
type PostalAddress1 struct {
	AdrTp       *AddressType2Code `json:"AdrTp,omitempty" xml:"AdrTp,omitempty"`
	AdrLine     []string          `json:"AdrLine,omitempty" xml:"AdrLine,omitempty"`
	StrtNm      *string           `json:"StrtNm,omitempty" xml:"StrtNm,omitempty"`
	BldgNb      *string           `json:"BldgNb,omitempty" xml:"BldgNb,omitempty"`
	PstCd       *string           `json:"PstCd,omitempty" xml:"PstCd,omitempty"`
	TwnNm       *string           `json:"TwnNm,omitempty" xml:"TwnNm,omitempty"`
	CtrySubDvsn *string           `json:"CtrySubDvsn,omitempty" xml:"CtrySubDvsn,omitempty"`
	Ctry        string            `json:"Ctry" xml:"Ctry"`
}

func (a *PostalAddress1) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("adr_tp", a.AdrTp),
		constraint.LengthEach("adr_line", a.AdrLine, 1, 70),
		constraint.MinLengthOpt("strt_nm", a.StrtNm, 1),
		constraint.MaxLengthOpt("strt_nm", a.StrtNm, 70),
		constraint.MinLengthOpt("bldg_nb", a.BldgNb, 1),
		constraint.MaxLengthOpt("bldg_nb", a.BldgNb, 16),
		constraint.MinLengthOpt("pst_cd", a.PstCd, 1),
		constraint.MaxLengthOpt("pst_cd", a.PstCd, 16),
		constraint.MinLengthOpt("twn_nm", a.TwnNm, 1),
		constraint.MaxLengthOpt("twn_nm", a.TwnNm, 35),
		constraint.MinLengthOpt("ctry_sub_dvsn", a.CtrySubDvsn, 1),
		constraint.MaxLengthOpt("ctry_sub_dvsn", a.CtrySubDvsn, 35),
		constraint.Pattern("ctry", a.Ctry, PatternCountryCode),
	)
}
