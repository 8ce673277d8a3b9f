package types

// Attachment 附件元数据。指针整体传递，四个字段同生同灭。
type Attachment struct {
	Filename       string `json:"filename"`
	StoredFilename string `json:"stored_filename"`
	ContentType    string `json:"content_type"`
	Size           int64  `json:"size"`
}

type CreateNoteRequest struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}

type NoteResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Content     *string `json:"content"`
	FileURL     *string `json:"file_url"`
	Filename    *string `json:"filename"`
	ContentType *string `json:"content_type"`
	Size        *int64  `json:"size"`
	CreatedAt   string  `json:"created_at"`
}

type DeleteNoteResponse struct {
	Detail string `json:"detail"`
}
