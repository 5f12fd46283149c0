package fednow

import "github.com/openfin/fednowmsg/pkg/constraint"

// IncomingMessage is the union of message kinds a participant can send into
// the service. Every slot is optional; zero or several populated slots still
// validate.
type IncomingMessage struct {
	MessageReject                                *Envelope                    `json:"FedNowMessageReject,omitempty" xml:"FedNowMessageReject,omitempty"`
	ParticipantBroadcast                         *Envelope                    `json:"FedNowParticipantBroadcast,omitempty" xml:"FedNowParticipantBroadcast,omitempty"`
	RetrievalRequest                             *Envelope                    `json:"FedNowRetrievalRequest,omitempty" xml:"FedNowRetrievalRequest,omitempty"`
	ReceiptAcknowledgement                       *Envelope                    `json:"FedNowReceiptAcknowledgement,omitempty" xml:"FedNowReceiptAcknowledgement,omitempty"`
	PaymentStatus                                *Envelope                    `json:"FedNowPaymentStatus,omitempty" xml:"FedNowPaymentStatus,omitempty"`
	PaymentReturn                                *Envelope                    `json:"FedNowPaymentReturn,omitempty" xml:"FedNowPaymentReturn,omitempty"`
	CustomerCreditTransfer                       *Envelope                    `json:"FedNowCustomerCreditTransfer,omitempty" xml:"FedNowCustomerCreditTransfer,omitempty"`
	InstitutionCreditTransfer                    *Envelope                    `json:"FedNowInstitutionCreditTransfer,omitempty" xml:"FedNowInstitutionCreditTransfer,omitempty"`
	PaymentStatusRequest                         *Envelope                    `json:"FedNowPaymentStatusRequest,omitempty" xml:"FedNowPaymentStatusRequest,omitempty"`
	RequestForPayment                            *Envelope                    `json:"FedNowRequestForPayment,omitempty" xml:"FedNowRequestForPayment,omitempty"`
	RequestForPaymentResponse                    *Envelope                    `json:"FedNowRequestForPaymentResponse,omitempty" xml:"FedNowRequestForPaymentResponse,omitempty"`
	InformationRequest                           *Envelope                    `json:"FedNowInformationRequest,omitempty" xml:"FedNowInformationRequest,omitempty"`
	AdditionalPaymentInformation                 *Envelope                    `json:"FedNowAdditionalPaymentInformation,omitempty" xml:"FedNowAdditionalPaymentInformation,omitempty"`
	InformationRequestResponse                   *Envelope                    `json:"FedNowInformationRequestResponse,omitempty" xml:"FedNowInformationRequestResponse,omitempty"`
	RequestForPaymentCancellationRequestResponse *Envelope                    `json:"FedNowRequestForPaymentCancellationRequestResponse,omitempty" xml:"FedNowRequestForPaymentCancellationRequestResponse,omitempty"`
	ReturnRequestResponse                        *Envelope                    `json:"FedNowReturnRequestResponse,omitempty" xml:"FedNowReturnRequestResponse,omitempty"`
	RequestForPaymentCancellationRequest         *Envelope                    `json:"FedNowRequestForPaymentCancellationRequest,omitempty" xml:"FedNowRequestForPaymentCancellationRequest,omitempty"`
	ReturnRequest                                *Envelope                    `json:"FedNowReturnRequest,omitempty" xml:"FedNowReturnRequest,omitempty"`
	AccountReportingRequest                      *Envelope                    `json:"FedNowAccountReportingRequest,omitempty" xml:"FedNowAccountReportingRequest,omitempty"`
	SignatureManagement                          *IncomingSignatureManagement `json:"FedNowIncomingMessageSignatureManagement,omitempty" xml:"FedNowIncomingMessageSignatureManagement,omitempty"`
}

func (m *IncomingMessage) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("message_reject", m.MessageReject),
		constraint.ValidIf("participant_broadcast", m.ParticipantBroadcast),
		constraint.ValidIf("retrieval_request", m.RetrievalRequest),
		constraint.ValidIf("receipt_acknowledgement", m.ReceiptAcknowledgement),
		constraint.ValidIf("payment_status", m.PaymentStatus),
		constraint.ValidIf("payment_return", m.PaymentReturn),
		constraint.ValidIf("customer_credit_transfer", m.CustomerCreditTransfer),
		constraint.ValidIf("institution_credit_transfer", m.InstitutionCreditTransfer),
		constraint.ValidIf("payment_status_request", m.PaymentStatusRequest),
		constraint.ValidIf("request_for_payment", m.RequestForPayment),
		constraint.ValidIf("request_for_payment_response", m.RequestForPaymentResponse),
		constraint.ValidIf("information_request", m.InformationRequest),
		constraint.ValidIf("additional_payment_information", m.AdditionalPaymentInformation),
		constraint.ValidIf("information_request_response", m.InformationRequestResponse),
		constraint.ValidIf("request_for_payment_cancellation_request_response", m.RequestForPaymentCancellationRequestResponse),
		constraint.ValidIf("return_request_response", m.ReturnRequestResponse),
		constraint.ValidIf("request_for_payment_cancellation_request", m.RequestForPaymentCancellationRequest),
		constraint.ValidIf("return_request", m.ReturnRequest),
		constraint.ValidIf("account_reporting_request", m.AccountReportingRequest),
		constraint.ValidIf("signature_management", m.SignatureManagement),
	)
}

// Incoming is the outermost shape of a participant-to-service submission.
type Incoming struct {
	TechnicalHeader *TechnicalHeader `json:"FedNowTechnicalHeader,omitempty" xml:"FedNowTechnicalHeader,omitempty"`
	Message         IncomingMessage  `json:"FedNowIncomingMessage" xml:"FedNowIncomingMessage"`
}

func (i *Incoming) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("technical_header", i.TechnicalHeader),
		constraint.Valid("message", &i.Message),
	)
}
