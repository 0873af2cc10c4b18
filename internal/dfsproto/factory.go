package dfsproto

import "github.com/dmitrijs2005/tdfs/internal/kms"

// NewCreateFileRequest builds a Create request.
func NewCreateFileRequest(fileName, sha256 string, fileSize uint32, userID, userToken string) CreateFileRequest {
	return CreateFileRequest{
		FileName:  fileName,
		SHA256:    sha256,
		FileSize:  fileSize,
		UserID:    userID,
		UserToken: userToken,
	}
}

// NewGetFileRequest builds a Get request for fileID.
func NewGetFileRequest(fileID, userID, userToken string) GetFileRequest {
	return GetFileRequest{FileID: fileID, UserID: userID, UserToken: userToken}
}

// NewListFileRequest builds a List request.
func NewListFileRequest(userID, userToken string) ListFileRequest {
	return ListFileRequest{UserID: userID, UserToken: userToken}
}

// NewDeleteFileRequest builds a Delete request for fileID.
func NewDeleteFileRequest(fileID, userID, userToken string) DeleteFileRequest {
	return DeleteFileRequest{FileID: fileID, UserID: userID, UserToken: userToken}
}

// NewCreateFileResponse copies keyConfig into the response.
func NewCreateFileResponse(fileID, accessPath string, keyConfig kms.AeadConfig) CreateFileResponse {
	return CreateFileResponse{
		FileID:     fileID,
		AccessPath: accessPath,
		KeyConfig:  keyConfig.Clone(),
	}
}

// NewGetFileResponse deep-copies info; the response never aliases the
// caller's slices.
func NewGetFileResponse(info FileInfo) GetFileResponse {
	return GetFileResponse{FileInfo: info.Clone()}
}

// NewListFileResponse copies items in order. A nil input yields an empty,
// non-nil list.
func NewListFileResponse(items []string) ListFileResponse {
	list := make([]string, len(items))
	copy(list, items)
	return ListFileResponse{List: list}
}

// NewDeleteFileResponse deep-copies info.
func NewDeleteFileResponse(info FileInfo) DeleteFileResponse {
	return DeleteFileResponse{FileInfo: info.Clone()}
}
