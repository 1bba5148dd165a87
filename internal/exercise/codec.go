package exercise

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalRepConfiguration encodes rc as a JSON object tagged with its variant,
// e.g. {"type":"hold","durationSeconds":45}. Only the active variant's fields
// are written.
func MarshalRepConfiguration(rc RepConfiguration) ([]byte, error) {
	switch rc := rc.(type) {
	case SimpleReps:
		return json.Marshal(struct {
			Type RepType `json:"type"`
			SimpleReps
		}{rc.Type(), rc})
	case HoldReps:
		return json.Marshal(struct {
			Type RepType `json:"type"`
			HoldReps
		}{rc.Type(), rc})
	case TempoReps:
		return json.Marshal(struct {
			Type RepType `json:"type"`
			TempoReps
		}{rc.Type(), rc})
	case ConcentricOnlyReps:
		return json.Marshal(struct {
			Type RepType `json:"type"`
			ConcentricOnlyReps
		}{rc.Type(), rc})
	case EccentricOnlyReps:
		return json.Marshal(struct {
			Type RepType `json:"type"`
			EccentricOnlyReps
		}{rc.Type(), rc})
	case ExplosiveReps:
		return json.Marshal(struct {
			Type RepType `json:"type"`
			ExplosiveReps
		}{rc.Type(), rc})
	}
	return nil, fmt.Errorf("marshal rep configuration: unsupported %T", rc)
}

// UnmarshalRepConfiguration decodes the tagged form written by
// MarshalRepConfiguration. Fields that do not belong to the tagged variant are
// rejected.
func UnmarshalRepConfiguration(data []byte) (RepConfiguration, error) {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("decode rep configuration: %w", err)
	}
	t, err := ParseRepType(tag.Type)
	if err != nil {
		return nil, fmt.Errorf("decode rep configuration: %w", err)
	}

	var rc RepConfiguration
	switch t {
	case RepSimple:
		var v struct {
			Type string `json:"type"`
			SimpleReps
		}
		err = decodeStrict(data, &v)
		rc = v.SimpleReps
	case RepHold:
		var v struct {
			Type string `json:"type"`
			HoldReps
		}
		err = decodeStrict(data, &v)
		rc = v.HoldReps
	case RepTempo:
		var v struct {
			Type string `json:"type"`
			TempoReps
		}
		err = decodeStrict(data, &v)
		rc = v.TempoReps
	case RepConcentricOnly:
		var v struct {
			Type string `json:"type"`
			ConcentricOnlyReps
		}
		err = decodeStrict(data, &v)
		rc = v.ConcentricOnlyReps
	case RepEccentricOnly:
		var v struct {
			Type string `json:"type"`
			EccentricOnlyReps
		}
		err = decodeStrict(data, &v)
		rc = v.EccentricOnlyReps
	case RepExplosive:
		var v struct {
			Type string `json:"type"`
			ExplosiveReps
		}
		err = decodeStrict(data, &v)
		rc = v.ExplosiveReps
	default:
		panic(fmt.Sprintf("exercise: unhandled rep type %q", t))
	}
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode rep configuration: %w", err)
	}
	return nil
}
