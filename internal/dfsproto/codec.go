package dfsproto

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDecode is wrapped by every structural decoding failure: malformed JSON,
// a missing or unknown "type", a missing required field or a field of the
// wrong type.
var ErrDecode = errors.New("dfsproto: decode error")

// EncodeRequest serializes r with its "type" tag.
func EncodeRequest(r Request) ([]byte, error) {
	switch v := r.(type) {
	case CreateFileRequest:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			CreateFileRequest
		}{KindCreate, v})
	case GetFileRequest:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			GetFileRequest
		}{KindGet, v})
	case ListFileRequest:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			ListFileRequest
		}{KindList, v})
	case DeleteFileRequest:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			DeleteFileRequest
		}{KindDelete, v})
	case *CreateFileRequest:
		if v != nil {
			return EncodeRequest(*v)
		}
	case *GetFileRequest:
		if v != nil {
			return EncodeRequest(*v)
		}
	case *ListFileRequest:
		if v != nil {
			return EncodeRequest(*v)
		}
	case *DeleteFileRequest:
		if v != nil {
			return EncodeRequest(*v)
		}
	}
	return nil, fmt.Errorf("dfsproto: cannot encode request %T", r)
}

// EncodeResponse serializes r with its "type" tag.
func EncodeResponse(r Response) ([]byte, error) {
	switch v := r.(type) {
	case CreateFileResponse:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			CreateFileResponse
		}{KindCreate, v})
	case GetFileResponse:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			GetFileResponse
		}{KindGet, v})
	case ListFileResponse:
		if v.List == nil {
			v.List = []string{}
		}
		return json.Marshal(struct {
			Type Kind `json:"type"`
			ListFileResponse
		}{KindList, v})
	case DeleteFileResponse:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			DeleteFileResponse
		}{KindDelete, v})
	case *CreateFileResponse:
		if v != nil {
			return EncodeResponse(*v)
		}
	case *GetFileResponse:
		if v != nil {
			return EncodeResponse(*v)
		}
	case *ListFileResponse:
		if v != nil {
			return EncodeResponse(*v)
		}
	case *DeleteFileResponse:
		if v != nil {
			return EncodeResponse(*v)
		}
	}
	return nil, fmt.Errorf("dfsproto: cannot encode response %T", r)
}

// DecodeRequest parses a tagged request. The returned value is always one of
// the four request structs (never a pointer).
func DecodeRequest(data []byte) (Request, error) {
	kind, err := readKind(data)
	if err != nil {
		return nil, err
	}

	var r Request
	switch kind {
	case KindCreate:
		var v CreateFileRequest
		err = json.Unmarshal(data, &v)
		r = v
	case KindGet:
		var v GetFileRequest
		err = json.Unmarshal(data, &v)
		r = v
	case KindList:
		var v ListFileRequest
		err = json.Unmarshal(data, &v)
		r = v
	case KindDelete:
		var v DeleteFileRequest
		err = json.Unmarshal(data, &v)
		r = v
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, kind, err)
	}
	return r, nil
}

// DecodeResponse parses a tagged response.
func DecodeResponse(data []byte) (Response, error) {
	kind, err := readKind(data)
	if err != nil {
		return nil, err
	}

	var r Response
	switch kind {
	case KindCreate:
		var v CreateFileResponse
		err = json.Unmarshal(data, &v)
		r = v
	case KindGet:
		var v GetFileResponse
		err = json.Unmarshal(data, &v)
		r = v
	case KindList:
		var v ListFileResponse
		err = json.Unmarshal(data, &v)
		r = v
	case KindDelete:
		var v DeleteFileResponse
		err = json.Unmarshal(data, &v)
		r = v
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, kind, err)
	}
	return r, nil
}

// readKind reads the discriminant from the exact "type" key.
func readKind(data []byte) (Kind, error) {
	raw, err := rawObject(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	tag, ok := raw["type"]
	if !ok {
		return "", fmt.Errorf("%w: missing \"type\"", ErrDecode)
	}
	var k Kind
	if err := json.Unmarshal(tag, &k); err != nil {
		return "", fmt.Errorf("%w: \"type\": %w", ErrDecode, err)
	}
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown message type %q", ErrDecode, string(k))
	}
	return k, nil
}

// PeekKind returns the tag of an encoded message without decoding its
// payload.
func PeekKind(data []byte) (Kind, error) {
	return readKind(data)
}
