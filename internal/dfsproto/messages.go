package dfsproto

import "github.com/dmitrijs2005/tdfs/internal/kms"

// Request is one of CreateFileRequest, GetFileRequest, ListFileRequest or
// DeleteFileRequest.
type Request interface {
	Kind() Kind
	// Credentials returns the user id and token presented by the caller.
	// They are not verified here.
	Credentials() (userID, userToken string)
	isRequest()
}

// Response is one of CreateFileResponse, GetFileResponse, ListFileResponse
// or DeleteFileResponse.
type Response interface {
	Kind() Kind
	isResponse()
}

// CreateFileRequest registers a new file of FileSize bytes.
type CreateFileRequest struct {
	FileName  string `json:"file_name"`
	SHA256    string `json:"sha256"`
	FileSize  uint32 `json:"file_size"`
	UserID    string `json:"user_id"`
	UserToken string `json:"user_token"`
}

// CreateFileResponse carries the new file id, where to upload the content
// and the key config to encrypt it with.
type CreateFileResponse struct {
	FileID     string         `json:"file_id"`
	AccessPath string         `json:"access_path"`
	KeyConfig  kms.AeadConfig `json:"key_config"`
}

// GetFileRequest asks for the info of one file.
type GetFileRequest struct {
	FileID    string `json:"file_id"`
	UserID    string `json:"user_id"`
	UserToken string `json:"user_token"`
}

// GetFileResponse wraps the requested file info.
type GetFileResponse struct {
	FileInfo FileInfo `json:"file_info"`
}

// ListFileRequest asks for the ids of every file visible to the caller.
type ListFileRequest struct {
	UserID    string `json:"user_id"`
	UserToken string `json:"user_token"`
}

// ListFileResponse holds file ids in server order.
type ListFileResponse struct {
	List []string `json:"list"`
}

// DeleteFileRequest removes a file.
type DeleteFileRequest struct {
	FileID    string `json:"file_id"`
	UserID    string `json:"user_id"`
	UserToken string `json:"user_token"`
}

// DeleteFileResponse returns the info of the removed file.
type DeleteFileResponse struct {
	FileInfo FileInfo `json:"file_info"`
}

// FileInfo describes a stored file. TaskID is nil unless a processing task
// is associated with the file.
type FileInfo struct {
	UserID           string         `json:"user_id"`
	FileName         string         `json:"file_name"`
	SHA256           string         `json:"sha256"`
	FileSize         uint32         `json:"file_size"`
	AccessPath       string         `json:"access_path"`
	TaskID           *string        `json:"task_id,omitempty"`
	CollaboratorList []string       `json:"collaborator_list"`
	KeyConfig        kms.AeadConfig `json:"key_config"`
}

// Clone returns a deep copy of fi.
func (fi FileInfo) Clone() FileInfo {
	out := fi
	if fi.TaskID != nil {
		id := *fi.TaskID
		out.TaskID = &id
	}
	if fi.CollaboratorList != nil {
		out.CollaboratorList = make([]string, len(fi.CollaboratorList))
		copy(out.CollaboratorList, fi.CollaboratorList)
	}
	out.KeyConfig = fi.KeyConfig.Clone()
	return out
}

func (CreateFileRequest) Kind() Kind { return KindCreate }
func (GetFileRequest) Kind() Kind    { return KindGet }
func (ListFileRequest) Kind() Kind   { return KindList }
func (DeleteFileRequest) Kind() Kind { return KindDelete }

func (r CreateFileRequest) Credentials() (string, string) { return r.UserID, r.UserToken }
func (r GetFileRequest) Credentials() (string, string)    { return r.UserID, r.UserToken }
func (r ListFileRequest) Credentials() (string, string)   { return r.UserID, r.UserToken }
func (r DeleteFileRequest) Credentials() (string, string) { return r.UserID, r.UserToken }

func (CreateFileRequest) isRequest() {}
func (GetFileRequest) isRequest()    {}
func (ListFileRequest) isRequest()   {}
func (DeleteFileRequest) isRequest() {}

func (CreateFileResponse) Kind() Kind { return KindCreate }
func (GetFileResponse) Kind() Kind    { return KindGet }
func (ListFileResponse) Kind() Kind   { return KindList }
func (DeleteFileResponse) Kind() Kind { return KindDelete }

func (CreateFileResponse) isResponse() {}
func (GetFileResponse) isResponse()    {}
func (ListFileResponse) isResponse()   {}
func (DeleteFileResponse) isResponse() {}
