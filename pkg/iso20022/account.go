package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// AccountSchemeName1Choice selects an account identification scheme.
type AccountSchemeName1Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *AccountSchemeName1Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 4),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

// GenericAccountIdentification1 identifies an account under a named scheme.
type GenericAccountIdentification1 struct {
	Id      string                    `json:"Id" xml:"Id"`
	SchmeNm *AccountSchemeName1Choice `json:"SchmeNm,omitempty" xml:"SchmeNm,omitempty"`
	Issr    *string                   `json:"Issr,omitempty" xml:"Issr,omitempty"`
}

func (g *GenericAccountIdentification1) Validate() error {
	return constraint.Apply(
		constraint.MinLength("id", g.Id, 1),
		constraint.MaxLength("id", g.Id, 34),
		constraint.ValidIf("schme_nm", g.SchmeNm),
		constraint.MinLengthOpt("issr", g.Issr, 1),
		constraint.MaxLengthOpt("issr", g.Issr, 35),
	)
}

// AccountIdentification4Choice selects between an IBAN and a proprietary
// account identification.
type AccountIdentification4Choice struct {
	IBAN *string                        `json:"IBAN,omitempty" xml:"IBAN,omitempty"`
	Othr *GenericAccountIdentification1 `json:"Othr,omitempty" xml:"Othr,omitempty"`
}

func (c *AccountIdentification4Choice) Validate() error {
	return constraint.Apply(
		constraint.PatternOpt("iban", c.IBAN, PatternIBAN),
		constraint.ValidIf("othr", c.Othr),
	)
}

// CashAccountType2Choice selects a cash account type.
type CashAccountType2Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *CashAccountType2Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 4),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

// ProxyAccountType1Choice selects a proxy account type.
type ProxyAccountType1Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *ProxyAccountType1Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 4),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

// ProxyAccountIdentification1 identifies an account through a proxy such as
// an alias registered with a directory service.
type ProxyAccountIdentification1 struct {
	Tp *ProxyAccountType1Choice `json:"Tp,omitempty" xml:"Tp,omitempty"`
	Id string                   `json:"Id" xml:"Id"`
}

func (p *ProxyAccountIdentification1) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("tp", p.Tp),
		constraint.MinLength("id", p.Id, 1),
		constraint.MaxLength("id", p.Id, 2048),
	)
}

// CashAccount38 describes a cash account and its servicing details.
type CashAccount38 struct {
	Id   AccountIdentification4Choice `json:"Id" xml:"Id"`
	Tp   *CashAccountType2Choice      `json:"Tp,omitempty" xml:"Tp,omitempty"`
	Ccy  *string                      `json:"Ccy,omitempty" xml:"Ccy,omitempty"`
	Nm   *string                      `json:"Nm,omitempty" xml:"Nm,omitempty"`
	Prxy *ProxyAccountIdentification1 `json:"Prxy,omitempty" xml:"Prxy,omitempty"`
}

func (a *CashAccount38) Validate() error {
	return constraint.Apply(
		constraint.Valid("id", &a.Id),
		constraint.ValidIf("tp", a.Tp),
		constraint.PatternOpt("ccy", a.Ccy, PatternCurrencyCode),
		constraint.MinLengthOpt("nm", a.Nm, 1),
		constraint.MaxLengthOpt("nm", a.Nm, 70),
		constraint.ValidIf("prxy", a.Prxy),
	)
}
