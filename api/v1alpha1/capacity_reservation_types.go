/*
MIT License

Copyright (c) 2025 Amazon Web Services

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package v1alpha1

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousCapacityReservationTarget is returned when both a reservation id
	// and a resource group ARN are set
	ErrAmbiguousCapacityReservationTarget = errors.New(
		"capacity reservation target sets both CapacityReservationId and CapacityReservationResourceGroupArn")

	// ErrEmptyCapacityReservationTarget is returned when decoding a standalone
	// target that names neither a reservation nor a resource group
	ErrEmptyCapacityReservationTarget = errors.New("capacity reservation target is empty")
)

// CapacityReservationTargetKind tells which identifier a target carries
type CapacityReservationTargetKind string

const (
	// CapacityReservationByID targets a single capacity reservation
	CapacityReservationByID CapacityReservationTargetKind = "CapacityReservationId"
	// CapacityReservationByResourceGroup targets a resource group of reservations
	CapacityReservationByResourceGroup CapacityReservationTargetKind = "CapacityReservationResourceGroupArn"
)

// CapacityReservationTarget pins capacity requests to one reservation or to a
// resource group of reservations. The absence of targeting is a nil pointer.
type CapacityReservationTarget struct {
	Kind  CapacityReservationTargetKind
	Value string
}

// NewCapacityReservationTargetByID targets the reservation with the given id
func NewCapacityReservationTargetByID(id string) *CapacityReservationTarget {
	return &CapacityReservationTarget{Kind: CapacityReservationByID, Value: id}
}

// NewCapacityReservationTargetByResourceGroup targets the resource group with the given ARN
func NewCapacityReservationTargetByResourceGroup(arn string) *CapacityReservationTarget {
	return &CapacityReservationTarget{Kind: CapacityReservationByResourceGroup, Value: arn}
}

// CapacityReservationID returns the reservation id, or "" for resource group targets
func (t *CapacityReservationTarget) CapacityReservationID() string {
	if t == nil || t.Kind != CapacityReservationByID {
		return ""
	}
	return t.Value
}

// CapacityReservationResourceGroupArn returns the resource group ARN, or "" for id targets
func (t *CapacityReservationTarget) CapacityReservationResourceGroupArn() string {
	if t == nil || t.Kind != CapacityReservationByResourceGroup {
		return ""
	}
	return t.Value
}

type capacityReservationTargetWire struct {
	CapacityReservationId               string `json:"CapacityReservationId,omitempty"`
	CapacityReservationResourceGroupArn string `json:"CapacityReservationResourceGroupArn,omitempty"`
}

func (t *CapacityReservationTarget) toWire() *capacityReservationTargetWire {
	switch t.Kind {
	case CapacityReservationByID:
		return &capacityReservationTargetWire{CapacityReservationId: t.Value}
	case CapacityReservationByResourceGroup:
		return &capacityReservationTargetWire{CapacityReservationResourceGroupArn: t.Value}
	}
	return nil
}

// toTarget maps the wire shape onto the tagged form; an absent or empty wire
// object means no targeting.
func (w *capacityReservationTargetWire) toTarget() (*CapacityReservationTarget, error) {
	if w == nil {
		return nil, nil
	}
	switch {
	case w.CapacityReservationId != "" && w.CapacityReservationResourceGroupArn != "":
		return nil, ErrAmbiguousCapacityReservationTarget
	case w.CapacityReservationId != "":
		return NewCapacityReservationTargetByID(w.CapacityReservationId), nil
	case w.CapacityReservationResourceGroupArn != "":
		return NewCapacityReservationTargetByResourceGroup(w.CapacityReservationResourceGroupArn), nil
	}
	return nil, nil
}

// MarshalJSON implements the json.Marshaler interface.
func (t CapacityReservationTarget) MarshalJSON() ([]byte, error) {
	wire := t.toWire()
	if wire == nil {
		return nil, fmt.Errorf("unknown capacity reservation target kind %q", t.Kind)
	}
	return json.Marshal(wire)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *CapacityReservationTarget) UnmarshalJSON(data []byte) error {
	var wire capacityReservationTargetWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	target, err := wire.toTarget()
	if err != nil {
		return err
	}
	if target == nil {
		return ErrEmptyCapacityReservationTarget
	}
	*t = *target
	return nil
}
