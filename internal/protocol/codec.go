package protocol

import (
	"bytes"
	"encoding/json"

	"padview/internal/gamepad"
)

// envelope is the inbound wire shape: a type tag plus the raw snapshot event.
type envelope struct {
	Type  string          `json:"type"`
	Event json.RawMessage `json:"event"`
}

// command is the outbound wire shape.
type command struct {
	Action string `json:"action"`
	Data   string `json:"data"`
}

var jsonNull = []byte("null")

// Decode parses one inbound payload into a message. It either produces a
// complete message or a *DecodeError; no partial message ever escapes.
func Decode(payload []byte) (Inbound, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, &DecodeError{Kind: SchemaMismatch, err: err}
	}

	switch env.Type {
	case TypeConnected, TypeDisconnected:
	default:
		return nil, &DecodeError{Kind: UnknownType, Type: env.Type}
	}

	if len(env.Event) == 0 || bytes.Equal(env.Event, jsonNull) {
		return nil, &DecodeError{Kind: SchemaMismatch, Type: env.Type}
	}

	var snap gamepad.RawSnapshot
	if err := json.Unmarshal(env.Event, &snap); err != nil {
		return nil, &DecodeError{Kind: SchemaMismatch, Type: env.Type, err: err}
	}

	if env.Type == TypeConnected {
		return Connected{Snapshot: snap}, nil
	}
	return Disconnected{Snapshot: snap}, nil
}

// EncodePoll serializes a poll command. Encoding is total for any id string.
func EncodePoll(req PollRequest) []byte {
	payload, err := json.Marshal(command{Action: ActionPoll, Data: req.DeviceID})
	if err != nil {
		// Marshaling two plain strings cannot fail.
		panic(err)
	}
	return payload
}
