package events

// SourceKind tells the consumer where the records of a batch live.
type SourceKind string

const (
	// SourceFile is a tab-separated log file on the local filesystem.
	SourceFile SourceKind = "file"
	// SourceUpload is a tab-separated batch stored by the HTTP upload endpoint.
	SourceUpload SourceKind = "upload"
	// SourceLogStore is one calendar day of the analytics log store.
	SourceLogStore SourceKind = "log_store"
)

// BatchReceivedEvent announces one batch ready for counting. A batch is the scope of
// session semantics: the hit manager is reset before and after it.
//
// Example JSON:
//
//	{
//	  "batchId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "collection": "scl",
//	  "sourceKind": "log_store",
//	  "location": "2021-03-14"
//	}
//
// Location is a file path for SourceFile, a storage key for SourceUpload and a
// YYYY-MM-DD day for SourceLogStore.
type BatchReceivedEvent struct {
	BatchID    string     `json:"batchId"`
	Collection string     `json:"collection"`
	SourceKind SourceKind `json:"sourceKind"`
	Location   string     `json:"location"`
}
