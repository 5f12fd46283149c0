package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// SignatureEnvelope is a placeholder for a detached cryptographic signature.
// Signature verification happens outside this layer.
type SignatureEnvelope struct{}

func (s *SignatureEnvelope) Validate() error { return nil }

// ImplementationSpecification1 points at the market practice registration a
// message complies with.
type ImplementationSpecification1 struct {
	Regy string `json:"Regy" xml:"Regy"`
	Id   string `json:"Id" xml:"Id"`
}

func (i *ImplementationSpecification1) Validate() error {
	return constraint.Apply(
		constraint.MinLength("regy", i.Regy, 1),
		constraint.MaxLength("regy", i.Regy, 350),
		constraint.MinLength("id", i.Id, 1),
		constraint.MaxLength("id", i.Id, 2048),
	)
}

// BusinessApplicationHeader5 is the related-header shape referenced from the
// Rltd element of BusinessApplicationHeaderV02.
type BusinessApplicationHeader5 struct {
	CharSet    *string             `json:"CharSet,omitempty" xml:"CharSet,omitempty"`
	Fr         Party44Choice       `json:"Fr" xml:"Fr"`
	To         Party44Choice       `json:"To" xml:"To"`
	BizMsgIdr  string              `json:"BizMsgIdr" xml:"BizMsgIdr"`
	MsgDefIdr  string              `json:"MsgDefIdr" xml:"MsgDefIdr"`
	BizSvc     *string             `json:"BizSvc,omitempty" xml:"BizSvc,omitempty"`
	CreDt      string              `json:"CreDt" xml:"CreDt"`
	CpyDplct   *CopyDuplicate1Code `json:"CpyDplct,omitempty" xml:"CpyDplct,omitempty"`
	PssblDplct *bool               `json:"PssblDplct,omitempty" xml:"PssblDplct,omitempty"`
	Prty       *string             `json:"Prty,omitempty" xml:"Prty,omitempty"`
	Sgntr      *SignatureEnvelope  `json:"Sgntr,omitempty" xml:"Sgntr,omitempty"`
}

func (h *BusinessApplicationHeader5) Validate() error {
	return constraint.Apply(
		constraint.Valid("fr", &h.Fr),
		constraint.Valid("to", &h.To),
		constraint.MinLength("biz_msg_idr", h.BizMsgIdr, 1),
		constraint.MaxLength("biz_msg_idr", h.BizMsgIdr, 35),
		constraint.MinLength("msg_def_idr", h.MsgDefIdr, 1),
		constraint.MaxLength("msg_def_idr", h.MsgDefIdr, 35),
		constraint.MinLengthOpt("biz_svc", h.BizSvc, 1),
		constraint.MaxLengthOpt("biz_svc", h.BizSvc, 35),
		constraint.ValidIf("cpy_dplct", h.CpyDplct),
		constraint.ValidIf("sgntr", h.Sgntr),
	)
}

// BusinessApplicationHeaderV02 is the business application header every
// envelope pairs with a document. Header and document validate
// independently; no cross-field rule ties the two together at this layer.
type BusinessApplicationHeaderV02 struct {
	CharSet    *string                       `json:"CharSet,omitempty" xml:"CharSet,omitempty"`
	Fr         Party44Choice                 `json:"Fr" xml:"Fr"`
	To         Party44Choice                 `json:"To" xml:"To"`
	BizMsgIdr  string                        `json:"BizMsgIdr" xml:"BizMsgIdr"`
	MsgDefIdr  string                        `json:"MsgDefIdr" xml:"MsgDefIdr"`
	BizSvc     *string                       `json:"BizSvc,omitempty" xml:"BizSvc,omitempty"`
	MktPrctc   *ImplementationSpecification1 `json:"MktPrctc,omitempty" xml:"MktPrctc,omitempty"`
	CreDt      string                        `json:"CreDt" xml:"CreDt"`
	BizPrcgDt  *string                       `json:"BizPrcgDt,omitempty" xml:"BizPrcgDt,omitempty"`
	CpyDplct   *CopyDuplicate1Code           `json:"CpyDplct,omitempty" xml:"CpyDplct,omitempty"`
	PssblDplct *bool                         `json:"PssblDplct,omitempty" xml:"PssblDplct,omitempty"`
	Prty       *string                       `json:"Prty,omitempty" xml:"Prty,omitempty"`
	Sgntr      *SignatureEnvelope            `json:"Sgntr,omitempty" xml:"Sgntr,omitempty"`
	Rltd       []BusinessApplicationHeader5  `json:"Rltd,omitempty" xml:"Rltd,omitempty"`
}

func (h *BusinessApplicationHeaderV02) Validate() error {
	return constraint.Apply(
		constraint.Valid("fr", &h.Fr),
		constraint.Valid("to", &h.To),
		constraint.MinLength("biz_msg_idr", h.BizMsgIdr, 1),
		constraint.MaxLength("biz_msg_idr", h.BizMsgIdr, 35),
		constraint.MinLength("msg_def_idr", h.MsgDefIdr, 1),
		constraint.MaxLength("msg_def_idr", h.MsgDefIdr, 35),
		constraint.MinLengthOpt("biz_svc", h.BizSvc, 1),
		constraint.MaxLengthOpt("biz_svc", h.BizSvc, 35),
		constraint.ValidIf("mkt_prctc", h.MktPrctc),
		constraint.ValidIf("cpy_dplct", h.CpyDplct),
		constraint.ValidIf("sgntr", h.Sgntr),
		constraint.Each("rltd", h.Rltd),
	)
}
