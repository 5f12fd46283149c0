package iso20022

// DateAndDateTime2Choice carries either a date or a date with time.
type DateAndDateTime2Choice struct {
	Dt   *string `json:"Dt,omitempty" xml:"Dt,omitempty"`
	DtTm *string `json:"DtTm,omitempty" xml:"DtTm,omitempty"`
}

func (c *DateAndDateTime2Choice) Validate() error { return nil }

// DateTimePeriod1 is a closed time span with both boundaries set.
type DateTimePeriod1 struct {
	FrDtTm string `json:"FrDtTm" xml:"FrDtTm"`
	ToDtTm string `json:"ToDtTm" xml:"ToDtTm"`
}

func (d *DateTimePeriod1) Validate() error { return nil }
