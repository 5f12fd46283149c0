package fednow

import (
	"fmt"
	"regexp"

	"github.com/openfin/fednowmsg/pkg/constraint"
)

var patternRoutingNumber = regexp.MustCompile(`^[0-9]{9,9}$`)

// ParticipantService identifies a service a participant is enabled for:
// send and receive credit transfers, receive-only, or request-for-payment
// receive.
type ParticipantService string

const (
	ServiceCreditTransferSendReceive ParticipantService = "CTSR"
	ServiceCreditTransferReceiveOnly ParticipantService = "CTRO"
	ServiceRequestForPaymentReceive  ParticipantService = "RFPR"
)

func (s ParticipantService) Validate() error {
	switch s {
	case ServiceCreditTransferSendReceive, ServiceCreditTransferReceiveOnly, ServiceRequestForPaymentReceive:
		return nil
	}
	return constraint.NewError(constraint.CodePatternMismatch, "",
		fmt.Sprintf("%q is not a participant service code", string(s)))
}

type FedNowParticipantProfile1 struct {
	Id   string               `json:"Id" xml:"Id"`
	Nm   string               `json:"Nm" xml:"Nm"`
	Svcs []ParticipantService `json:"Svcs" xml:"Svcs"`
}

func (p *FedNowParticipantProfile1) Validate() error {
	return constraint.Apply(
		constraint.Pattern("id", p.Id, patternRoutingNumber),
		constraint.MinLength("nm", p.Nm, 1),
		constraint.MaxLength("nm", p.Nm, 140),
		constraint.Each("svcs", p.Svcs),
	)
}

// FedNowParticipantFile1 is the daily roster of enabled participants.
type FedNowParticipantFile1 struct {
	BizDay    string                      `json:"BizDay" xml:"BizDay"`
	PtcptPrfl []FedNowParticipantProfile1 `json:"PtcptPrfl" xml:"PtcptPrfl"`
}

func (f *FedNowParticipantFile1) Validate() error {
	return constraint.Apply(
		constraint.Each("ptcpt_prfl", f.PtcptPrfl),
	)
}

// Admi998SuplDataV01 wraps the participant file in the admi.998 proprietary
// message shape.
type Admi998SuplDataV01 struct {
	PtcptFile FedNowParticipantFile1 `json:"FedNowPtcptFile" xml:"FedNowPtcptFile"`
}

func (a *Admi998SuplDataV01) Validate() error {
	return constraint.Apply(
		constraint.Valid("ptcpt_file", &a.PtcptFile),
	)
}
