package processor

// Capability names one operation of the host payment processor contract.
type Capability string

const (
	CapInitiate          Capability = "initiate"
	CapUpdate            Capability = "update"
	CapAuthorize         Capability = "authorize"
	CapGetStatus         Capability = "get_status"
	CapCapture           Capability = "capture"
	CapRetrieve          Capability = "retrieve"
	CapCancel            Capability = "cancel"
	CapRefund            Capability = "refund"
	CapDelete            Capability = "delete"
	CapUpdatePaymentData Capability = "update_payment_data"
)

type Support int

const (
	Unsupported Support = iota
	// Partial capabilities only succeed for some inputs. Capture works only
	// for payments Mercado Pago already captured.
	Partial
	Supported
)

func (s Support) String() string {
	switch s {
	case Supported:
		return "supported"
	case Partial:
		return "partial"
	default:
		return "unsupported"
	}
}

func (s Support) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var capabilities = map[Capability]Support{
	CapInitiate:          Supported,
	CapUpdate:            Supported,
	CapAuthorize:         Supported,
	CapGetStatus:         Supported,
	CapCapture:           Partial,
	CapRetrieve:          Supported,
	CapCancel:            Unsupported,
	CapRefund:            Unsupported,
	CapDelete:            Unsupported,
	CapUpdatePaymentData: Unsupported,
}

// Capabilities returns a copy of the capability table.
func (p *Processor) Capabilities() map[Capability]Support {
	out := make(map[Capability]Support, len(capabilities))
	for c, s := range capabilities {
		out[c] = s
	}
	return out
}

func (p *Processor) Supports(c Capability) Support {
	return capabilities[c]
}
