package fednow

import "github.com/openfin/fednowmsg/pkg/constraint"

// OutgoingMessage is the union of message kinds the service can deliver to a
// participant. Like IncomingMessage it is permissive: every slot is optional
// and populated slots validate independently.
type OutgoingMessage struct {
	MessageReject                                *Envelope                    `json:"FedNowMessageReject,omitempty" xml:"FedNowMessageReject,omitempty"`
	Broadcast                                    *Envelope                    `json:"FedNowBroadcast,omitempty" xml:"FedNowBroadcast,omitempty"`
	SystemResponse                               *Envelope                    `json:"FedNowSystemResponse,omitempty" xml:"FedNowSystemResponse,omitempty"`
	ParticipantFile                              *Envelope                    `json:"FedNowParticipantFile,omitempty" xml:"FedNowParticipantFile,omitempty"`
	PaymentStatus                                *Envelope                    `json:"FedNowPaymentStatus,omitempty" xml:"FedNowPaymentStatus,omitempty"`
	PaymentReturn                                *Envelope                    `json:"FedNowPaymentReturn,omitempty" xml:"FedNowPaymentReturn,omitempty"`
	CustomerCreditTransfer                       *Envelope                    `json:"FedNowCustomerCreditTransfer,omitempty" xml:"FedNowCustomerCreditTransfer,omitempty"`
	InstitutionCreditTransfer                    *Envelope                    `json:"FedNowInstitutionCreditTransfer,omitempty" xml:"FedNowInstitutionCreditTransfer,omitempty"`
	PaymentStatusRequest                         *Envelope                    `json:"FedNowPaymentStatusRequest,omitempty" xml:"FedNowPaymentStatusRequest,omitempty"`
	RequestForPayment                            *Envelope                    `json:"FedNowRequestForPayment,omitempty" xml:"FedNowRequestForPayment,omitempty"`
	RequestForPaymentResponse                    *Envelope                    `json:"FedNowRequestForPaymentResponse,omitempty" xml:"FedNowRequestForPaymentResponse,omitempty"`
	InformationRequest                           *Envelope                    `json:"FedNowInformationRequest,omitempty" xml:"FedNowInformationRequest,omitempty"`
	AdditionalPaymentInformation                 *Envelope                    `json:"FedNowAdditionalPaymentInformation,omitempty" xml:"FedNowAdditionalPaymentInformation,omitempty"`
	ReturnRequestResponse                        *Envelope                    `json:"FedNowReturnRequestResponse,omitempty" xml:"FedNowReturnRequestResponse,omitempty"`
	RequestForPaymentCancellationRequest         *Envelope                    `json:"FedNowRequestForPaymentCancellationRequest,omitempty" xml:"FedNowRequestForPaymentCancellationRequest,omitempty"`
	RequestForPaymentCancellationRequestResponse *Envelope                    `json:"FedNowRequestForPaymentCancellationRequestResponse,omitempty" xml:"FedNowRequestForPaymentCancellationRequestResponse,omitempty"`
	ReturnRequest                                *Envelope                    `json:"FedNowReturnRequest,omitempty" xml:"FedNowReturnRequest,omitempty"`
	InformationRequestResponse                   *Envelope                    `json:"FedNowInformationRequestResponse,omitempty" xml:"FedNowInformationRequestResponse,omitempty"`
	AccountActivityDetailsReport                 *Envelope                    `json:"FedNowAccountActivityDetailsReport,omitempty" xml:"FedNowAccountActivityDetailsReport,omitempty"`
	AccountActivityTotalsReport                  *Envelope                    `json:"FedNowAccountActivityTotalsReport,omitempty" xml:"FedNowAccountActivityTotalsReport,omitempty"`
	AccountBalanceReport                         *Envelope                    `json:"FedNowAccountBalanceReport,omitempty" xml:"FedNowAccountBalanceReport,omitempty"`
	AccountDebitCreditNotification               *Envelope                    `json:"FedNowAccountDebitCreditNotification,omitempty" xml:"FedNowAccountDebitCreditNotification,omitempty"`
	SignatureManagement                          *OutgoingSignatureManagement `json:"FedNowOutgoingMessageSignatureManagement,omitempty" xml:"FedNowOutgoingMessageSignatureManagement,omitempty"`
}

func (m *OutgoingMessage) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("message_reject", m.MessageReject),
		constraint.ValidIf("broadcast", m.Broadcast),
		constraint.ValidIf("system_response", m.SystemResponse),
		constraint.ValidIf("participant_file", m.ParticipantFile),
		constraint.ValidIf("payment_status", m.PaymentStatus),
		constraint.ValidIf("payment_return", m.PaymentReturn),
		constraint.ValidIf("customer_credit_transfer", m.CustomerCreditTransfer),
		constraint.ValidIf("institution_credit_transfer", m.InstitutionCreditTransfer),
		constraint.ValidIf("payment_status_request", m.PaymentStatusRequest),
		constraint.ValidIf("request_for_payment", m.RequestForPayment),
		constraint.ValidIf("request_for_payment_response", m.RequestForPaymentResponse),
		constraint.ValidIf("information_request", m.InformationRequest),
		constraint.ValidIf("additional_payment_information", m.AdditionalPaymentInformation),
		constraint.ValidIf("return_request_response", m.ReturnRequestResponse),
		constraint.ValidIf("request_for_payment_cancellation_request", m.RequestForPaymentCancellationRequest),
		constraint.ValidIf("request_for_payment_cancellation_request_response", m.RequestForPaymentCancellationRequestResponse),
		constraint.ValidIf("return_request", m.ReturnRequest),
		constraint.ValidIf("information_request_response", m.InformationRequestResponse),
		constraint.ValidIf("account_activity_details_report", m.AccountActivityDetailsReport),
		constraint.ValidIf("account_activity_totals_report", m.AccountActivityTotalsReport),
		constraint.ValidIf("account_balance_report", m.AccountBalanceReport),
		constraint.ValidIf("account_debit_credit_notification", m.AccountDebitCreditNotification),
		constraint.ValidIf("signature_management", m.SignatureManagement),
	)
}

// Outgoing is the outermost shape of a service-to-participant delivery.
type Outgoing struct {
	TechnicalHeader *TechnicalHeader `json:"FedNowTechnicalHeader,omitempty" xml:"FedNowTechnicalHeader,omitempty"`
	Message         OutgoingMessage  `json:"FedNowOutgoingMessage" xml:"FedNowOutgoingMessage"`
}

func (o *Outgoing) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("technical_header", o.TechnicalHeader),
		constraint.Valid("message", &o.Message),
	)
}
