package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// SupplementaryDataEnvelope1 carries uninterpreted extension content. Its
// contents are defined by the scheme named in the enclosing
// SupplementaryData1 and are not constrained here.
type SupplementaryDataEnvelope1 struct{}

func (e *SupplementaryDataEnvelope1) Validate() error { return nil }

// SupplementaryData1 attaches scheme-qualified extension data to a message.
type SupplementaryData1 struct {
	PlcAndNm *string                    `json:"PlcAndNm,omitempty" xml:"PlcAndNm,omitempty"`
	Envlp    SupplementaryDataEnvelope1 `json:"Envlp" xml:"Envlp"`
}

func (s *SupplementaryData1) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("plc_and_nm", s.PlcAndNm, 1),
		constraint.MaxLengthOpt("plc_and_nm", s.PlcAndNm, 350),
		constraint.Valid("envlp", &s.Envlp),
	)
}
