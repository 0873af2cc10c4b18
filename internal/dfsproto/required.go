package dfsproto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Every payload field is required and non-null except FileInfo.task_id.
// encoding/json matches keys case-insensitively and leaves absent or null
// fields at their zero value, so each payload reads the raw object, keeps
// only the exact snake_case keys and then decodes through a method-less
// alias type. Unknown keys are dropped.

func decodeObject(data []byte, v any, required []string, optional ...string) error {
	raw, err := rawObject(data)
	if err != nil {
		return err
	}

	fields := make(map[string]json.RawMessage, len(required)+len(optional))
	for _, f := range required {
		val, ok := raw[f]
		if !ok {
			return fmt.Errorf("missing field %q", f)
		}
		if isNull(val) {
			return fmt.Errorf("field %q is null", f)
		}
		if err := checkElements(val); err != nil {
			return fmt.Errorf("field %q: %w", f, err)
		}
		fields[f] = val
	}
	for _, f := range optional {
		if val, ok := raw[f]; ok {
			fields[f] = val
		}
	}

	exact, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(exact, v)
}

func rawObject(data []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("expected object, got null")
	}
	return raw, nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// checkElements rejects null entries of an array value; no list in the
// protocol has optional elements.
func checkElements(v json.RawMessage) error {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || v[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return err
	}
	for i, item := range items {
		if isNull(item) {
			return fmt.Errorf("element %d is null", i)
		}
	}
	return nil
}

func (r *CreateFileRequest) UnmarshalJSON(data []byte) error {
	type plain CreateFileRequest
	return decodeObject(data, (*plain)(r), []string{"file_name", "sha256", "file_size", "user_id", "user_token"})
}

func (r *GetFileRequest) UnmarshalJSON(data []byte) error {
	type plain GetFileRequest
	return decodeObject(data, (*plain)(r), []string{"file_id", "user_id", "user_token"})
}

func (r *ListFileRequest) UnmarshalJSON(data []byte) error {
	type plain ListFileRequest
	return decodeObject(data, (*plain)(r), []string{"user_id", "user_token"})
}

func (r *DeleteFileRequest) UnmarshalJSON(data []byte) error {
	type plain DeleteFileRequest
	return decodeObject(data, (*plain)(r), []string{"file_id", "user_id", "user_token"})
}

func (r *CreateFileResponse) UnmarshalJSON(data []byte) error {
	type plain CreateFileResponse
	return decodeObject(data, (*plain)(r), []string{"file_id", "access_path", "key_config"})
}

func (r *GetFileResponse) UnmarshalJSON(data []byte) error {
	type plain GetFileResponse
	return decodeObject(data, (*plain)(r), []string{"file_info"})
}

func (r *ListFileResponse) UnmarshalJSON(data []byte) error {
	type plain ListFileResponse
	return decodeObject(data, (*plain)(r), []string{"list"})
}

func (r *DeleteFileResponse) UnmarshalJSON(data []byte) error {
	type plain DeleteFileResponse
	return decodeObject(data, (*plain)(r), []string{"file_info"})
}

func (fi *FileInfo) UnmarshalJSON(data []byte) error {
	type plain FileInfo
	return decodeObject(data, (*plain)(fi),
		[]string{"user_id", "file_name", "sha256", "file_size", "access_path", "collaborator_list", "key_config"},
		"task_id")
}

// MarshalJSON writes a nil collaborator list as [] so the output always
// decodes.
func (fi FileInfo) MarshalJSON() ([]byte, error) {
	type plain FileInfo
	if fi.CollaboratorList == nil {
		fi.CollaboratorList = []string{}
	}
	return json.Marshal(plain(fi))
}
