// Package h225 implements a small slice of the ITU-T H.225.0 RAS
// (Registration, Admission, and Status) message grammar on top of the
// per package: GatekeeperRequest (GRQ), GatekeeperConfirm (GCF), and
// the outer RasPDU CHOICE that selects between them.
package h225

import (
	"github.com/ud84/h225ras/lib/bitio"
	"github.com/ud84/h225ras/lib/per"
)

// rasNumAlternatives matches the H.225.0 v7 RAS-Message CHOICE size;
// only two of its 33 declared alternatives are materialized here.
const rasNumAlternatives = 33

// Fixed alternative-to-index mapping. Wire-compatibility constants:
// these must never drift once something on the wire depends on them.
const (
	rasIndexGCF = 1
	rasIndexGRQ = 3
)

// grqOptionalCount is the declared width of GatekeeperRequest's
// OPTIONAL-field preamble. H.225 v7 declares twelve OPTIONAL fields on
// GatekeeperRequest; this core materializes only the last of them
// (endpointAlias) but must still render the full twelve-bit preamble
// so the wire layout matches a real H.225 v7 peer.
const grqOptionalCount = 12

// grqEndpointAliasSlot is endpointAlias's position in GRQ's declared
// OPTIONAL order (0-indexed), i.e. the last of the twelve slots.
const grqEndpointAliasSlot = grqOptionalCount - 1

// RasMessage is the tagged union RasPDU carries: exactly one of
// *GatekeeperRequest or *GatekeeperConfirm.
type RasMessage interface {
	rasMessage()
}

// GatekeeperRequest is the GRQ message an endpoint sends to discover
// and register with a gatekeeper.
type GatekeeperRequest struct {
	RequestSeqNum      int64
	ProtocolIdentifier per.ObjectIdentifier
	// EndpointAlias is GRQ's sole materialized OPTIONAL field in this
	// core; nil means absent.
	EndpointAlias *string
}

func (*GatekeeperRequest) rasMessage() {}

// GatekeeperConfirm is a minimal placeholder for the gatekeeper's GRQ
// response, carrying only the echoed request sequence number.
type GatekeeperConfirm struct {
	RequestSeqNum int64
}

func (*GatekeeperConfirm) rasMessage() {}

// EncodeGatekeeperRequest writes the extension marker, the twelve-bit
// OPTIONAL preamble, requestSeqNum, protocolIdentifier, and (if
// present) endpointAlias.
func EncodeGatekeeperRequest(w *bitio.BitWriter, msg *GatekeeperRequest) error {
	if err := per.EncodeExtensionMarker(w, false); err != nil {
		return err
	}
	present := make([]bool, grqOptionalCount)
	present[grqEndpointAliasSlot] = msg.EndpointAlias != nil
	if err := per.EncodeSequencePreamble(w, present); err != nil {
		return err
	}
	if err := per.EncodeConstrainedInteger(w, msg.RequestSeqNum, 1, 65535); err != nil {
		return err
	}
	if err := per.EncodeObjectIdentifier(w, msg.ProtocolIdentifier); err != nil {
		return err
	}
	if msg.EndpointAlias != nil {
		if err := per.EncodeIA5String(w, *msg.EndpointAlias); err != nil {
			return err
		}
	}
	return nil
}

// DecodeGatekeeperRequest is the inverse of EncodeGatekeeperRequest.
func DecodeGatekeeperRequest(r *bitio.BitReader) (*GatekeeperRequest, error) {
	if _, err := per.DecodeExtensionMarker(r); err != nil {
		return nil, err
	}
	present, err := per.DecodeSequencePreamble(r, grqOptionalCount)
	if err != nil {
		return nil, err
	}
	seqNum, err := per.DecodeConstrainedInteger(r, 1, 65535)
	if err != nil {
		return nil, err
	}
	oid, err := per.DecodeObjectIdentifier(r)
	if err != nil {
		return nil, err
	}
	msg := &GatekeeperRequest{
		RequestSeqNum:      seqNum,
		ProtocolIdentifier: oid,
	}
	if present[grqEndpointAliasSlot] {
		alias, err := per.DecodeIA5String(r)
		if err != nil {
			return nil, err
		}
		msg.EndpointAlias = &alias
	}
	return msg, nil
}

// EncodeGatekeeperConfirm writes GCF's extension marker, empty
// preamble, and requestSeqNum.
func EncodeGatekeeperConfirm(w *bitio.BitWriter, msg *GatekeeperConfirm) error {
	if err := per.EncodeExtensionMarker(w, false); err != nil {
		return err
	}
	if err := per.EncodeConstrainedInteger(w, msg.RequestSeqNum, 1, 65535); err != nil {
		return err
	}
	return nil
}

// DecodeGatekeeperConfirm is the inverse of EncodeGatekeeperConfirm.
func DecodeGatekeeperConfirm(r *bitio.BitReader) (*GatekeeperConfirm, error) {
	if _, err := per.DecodeExtensionMarker(r); err != nil {
		return nil, err
	}
	seqNum, err := per.DecodeConstrainedInteger(r, 1, 65535)
	if err != nil {
		return nil, err
	}
	return &GatekeeperConfirm{RequestSeqNum: seqNum}, nil
}

// EncodeRasPDU writes the outer extensible CHOICE index (33 root
// alternatives) for msg's concrete type, then defers to that message's
// encoder.
func EncodeRasPDU(w *bitio.BitWriter, msg RasMessage) error {
	switch m := msg.(type) {
	case *GatekeeperRequest:
		if err := per.EncodeChoiceIndex(w, rasIndexGRQ, rasNumAlternatives, true); err != nil {
			return err
		}
		return EncodeGatekeeperRequest(w, m)
	case *GatekeeperConfirm:
		if err := per.EncodeChoiceIndex(w, rasIndexGCF, rasNumAlternatives, true); err != nil {
			return err
		}
		return EncodeGatekeeperConfirm(w, m)
	default:
		return &bitio.Error{Kind: bitio.InvalidConstraint, Message: "unknown RasMessage variant"}
	}
}

// DecodeRasPDU reads the outer CHOICE index and dispatches to the
// matching message decoder. Any other of the 33 declared alternatives,
// or the CHOICE extension branch, yields UnsupportedFeature; an index
// beyond the 33 declared alternatives is rejected by
// per.DecodeChoiceIndex with InvalidConstraint.
func DecodeRasPDU(r *bitio.BitReader) (RasMessage, error) {
	index, err := per.DecodeChoiceIndex(r, rasNumAlternatives, true)
	if err != nil {
		return nil, err
	}
	switch index {
	case rasIndexGRQ:
		return DecodeGatekeeperRequest(r)
	case rasIndexGCF:
		return DecodeGatekeeperConfirm(r)
	default:
		return nil, &bitio.Error{
			Kind:    bitio.UnsupportedFeature,
			Message: "RAS message alternative not implemented in this core",
		}
	}
}
