package iso20022

// Code types are closed sets of named variants. Membership is fixed by the
// constant sets below; Validate is a no-op kept for symmetry with composite
// types so code-typed fields participate in the same recursion.

// AddressType2Code specifies the nature of a postal address.
type AddressType2Code string

const (
	AddressTypePostal      AddressType2Code = "ADDR"
	AddressTypePOBox       AddressType2Code = "PBOX"
	AddressTypeResidential AddressType2Code = "HOME"
	AddressTypeBusiness    AddressType2Code = "BIZZ"
	AddressTypeMailTo      AddressType2Code = "MLTO"
	AddressTypeDeliveryTo  AddressType2Code = "DLVY"
)

func (c AddressType2Code) Validate() error { return nil }

// CopyDuplicate1Code indicates whether a message is a copy, a duplicate, or
// a copy of a duplicate.
type CopyDuplicate1Code string

const (
	CopyDuplicateCopyDuplicate CopyDuplicate1Code = "CODU"
	CopyDuplicateCopy          CopyDuplicate1Code = "COPY"
	CopyDuplicateDuplicate     CopyDuplicate1Code = "DUPL"
)

func (c CopyDuplicate1Code) Validate() error { return nil }

// NamePrefix2Code specifies the terms used to formally address a person.
type NamePrefix2Code string

const (
	NamePrefixDoctor        NamePrefix2Code = "DOCT"
	NamePrefixMadam         NamePrefix2Code = "MADM"
	NamePrefixMiss          NamePrefix2Code = "MISS"
	NamePrefixMister        NamePrefix2Code = "MIST"
	NamePrefixGenderNeutral NamePrefix2Code = "MIKS"
)

func (c NamePrefix2Code) Validate() error { return nil }

// PreferredContactMethod1Code specifies the preferred contact channel.
type PreferredContactMethod1Code string

const (
	PreferredContactLetter PreferredContactMethod1Code = "LETT"
	PreferredContactEmail  PreferredContactMethod1Code = "MAIL"
	PreferredContactPhone  PreferredContactMethod1Code = "PHON"
	PreferredContactFax    PreferredContactMethod1Code = "FAXX"
	PreferredContactMobile PreferredContactMethod1Code = "CELL"
)

func (c PreferredContactMethod1Code) Validate() error { return nil }

// SettlementMethod1Code specifies how an instruction is settled.
type SettlementMethod1Code string

const (
	SettlementInstructedAgent  SettlementMethod1Code = "INDA"
	SettlementInstructingAgent SettlementMethod1Code = "INGA"
	SettlementCoverMethod      SettlementMethod1Code = "COVE"
	SettlementClearingSystem   SettlementMethod1Code = "CLRG"
)

func (c SettlementMethod1Code) Validate() error { return nil }

// ChargeBearerType1Code specifies which party bears the transaction charges.
type ChargeBearerType1Code string

const (
	ChargeBearerDebtor   ChargeBearerType1Code = "DEBT"
	ChargeBearerCreditor ChargeBearerType1Code = "CRED"
	ChargeBearerShared   ChargeBearerType1Code = "SHAR"
	ChargeBearerService  ChargeBearerType1Code = "SLEV"
)

func (c ChargeBearerType1Code) Validate() error { return nil }

// Priority2Code specifies instruction priority.
type Priority2Code string

const (
	PriorityHigh   Priority2Code = "HIGH"
	PriorityNormal Priority2Code = "NORM"
)

func (c Priority2Code) Validate() error { return nil }

// Priority3Code specifies settlement priority.
type Priority3Code string

const (
	SettlementPriorityUrgent Priority3Code = "URGT"
	SettlementPriorityHigh   Priority3Code = "HIGH"
	SettlementPriorityNormal Priority3Code = "NORM"
)

func (c Priority3Code) Validate() error { return nil }

// ClearingChannel2Code specifies the clearing channel for an instruction.
type ClearingChannel2Code string

const (
	ClearingChannelRTGS         ClearingChannel2Code = "RTGS"
	ClearingChannelRealTimeNet  ClearingChannel2Code = "RTNS"
	ClearingChannelMassPayment  ClearingChannel2Code = "MPNS"
	ClearingChannelBookTransfer ClearingChannel2Code = "BOOK"
)

func (c ClearingChannel2Code) Validate() error { return nil }

// DocumentType3Code specifies a type of financial or commercial document.
type DocumentType3Code string

const (
	DocumentTypeRemittanceAdvice DocumentType3Code = "RADM"
	DocumentTypeRelatedPayment   DocumentType3Code = "RPIN"
	DocumentTypeForeignExchange  DocumentType3Code = "FXDR"
	DocumentTypeDispatchAdvice   DocumentType3Code = "DISP"
	DocumentTypePurchaseOrder    DocumentType3Code = "PUOR"
	DocumentTypeStructuredComm   DocumentType3Code = "SCOR"
)

func (c DocumentType3Code) Validate() error { return nil }

// QueryType3Code specifies the nature of a reporting request.
type QueryType3Code string

const (
	QueryAll      QueryType3Code = "ALLL"
	QueryChanged  QueryType3Code = "CHNG"
	QueryModified QueryType3Code = "MODF"
)

func (c QueryType3Code) Validate() error { return nil }

// CreditDebitCode indicates whether an entry or balance is a credit or a
// debit from the account owner's point of view.
type CreditDebitCode string

const (
	CreditDebitCredit CreditDebitCode = "CRDT"
	CreditDebitDebit  CreditDebitCode = "DBIT"
)

func (c CreditDebitCode) Validate() error { return nil }

// PaymentMethod7Code specifies the means of payment for a payment activation
// request.
type PaymentMethod7Code string

const (
	PaymentMethodCheque   PaymentMethod7Code = "CHK"
	PaymentMethodTransfer PaymentMethod7Code = "TRF"
)

func (c PaymentMethod7Code) Validate() error { return nil }

// PaymentMethod4Code specifies the means of payment echoed in status
// reports, which also covers direct debits and internal transfers.
type PaymentMethod4Code string

const (
	PaymentMethod4Cheque      PaymentMethod4Code = "CHK"
	PaymentMethod4Transfer    PaymentMethod4Code = "TRF"
	PaymentMethod4DirectDebit PaymentMethod4Code = "DD"
	PaymentMethod4Advice      PaymentMethod4Code = "TRA"
)

func (c PaymentMethod4Code) Validate() error { return nil }

// GroupCancellationStatus1Code reports the outcome of a cancellation request
// at group level.
type GroupCancellationStatus1Code string

const (
	GroupCancellationPartiallyAccepted GroupCancellationStatus1Code = "PACR"
	GroupCancellationRejected          GroupCancellationStatus1Code = "RJCR"
	GroupCancellationAccepted          GroupCancellationStatus1Code = "ACCR"
	GroupCancellationPending           GroupCancellationStatus1Code = "PDCR"
)

func (c GroupCancellationStatus1Code) Validate() error { return nil }

// Instruction5Code instructs the creditor agent how to contact the creditor.
type Instruction5Code string

const (
	InstructionPhoneBeneficiary Instruction5Code = "PHOB"
	InstructionTelecom          Instruction5Code = "TELB"
)

func (c Instruction5Code) Validate() error { return nil }
