package pivxjson

import (
	"encoding/json"
	"fmt"
	"sort"
)

// MempoolEntry is the per-transaction detail of a verbose getrawmempool.
type MempoolEntry struct {
	Size            int64    `json:"size"`
	Fee             float64  `json:"fee"`
	ModifiedFee     *float64 `json:"modifiedfee,omitempty"`
	Time            *int64   `json:"time,omitempty"`
	Height          *int64   `json:"height,omitempty"`
	DescendantCount *int64   `json:"descendantcount,omitempty"`
	DescendantSize  *int64   `json:"descendantsize,omitempty"`
	DescendantFees  *float64 `json:"descendantfees,omitempty"`
	AncestorCount   *int64   `json:"ancestorcount,omitempty"`
	AncestorSize    *int64   `json:"ancestorsize,omitempty"`
	AncestorFees    *float64 `json:"ancestorfees,omitempty"`
	Wtxid           *string  `json:"wtxid,omitempty"`
	Depends         []string `json:"depends,omitempty"`
}

func (e *MempoolEntry) UnmarshalJSON(data []byte) error {
	type plain MempoolEntry
	return decodeRecord(data, (*plain)(e))
}

// RawMempool is the getrawmempool result. TxIDs is set when the node sent a
// flat id list, Entries when it sent the verbose id-to-entry mapping.
//
// The two shapes are the ones current nodes produce. Other shapes are
// rejected rather than guessed at.
type RawMempool struct {
	TxIDs   []string
	Entries map[string]MempoolEntry
}

func (m RawMempool) Verbose() bool {
	return m.Entries != nil
}

func (m RawMempool) Len() int {
	if m.Entries != nil {
		return len(m.Entries)
	}
	return len(m.TxIDs)
}

// IDs returns the transaction ids in either variant. Verbose ids are sorted.
func (m RawMempool) IDs() []string {
	if m.Entries == nil {
		return m.TxIDs
	}
	ids := make([]string, 0, len(m.Entries))
	for id := range m.Entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m *RawMempool) UnmarshalJSON(data []byte) error {
	switch Shape(data) {
	case "array":
		ids := []string{}
		if err := json.Unmarshal(data, &ids); err != nil {
			return fmt.Errorf("getrawmempool: %w: %v", ErrUnknownShape, err)
		}
		*m = RawMempool{TxIDs: ids}
	case "object":
		entries := map[string]MempoolEntry{}
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("getrawmempool: %w", err)
		}
		*m = RawMempool{Entries: entries}
	default:
		return fmt.Errorf("getrawmempool: %w: got %s", ErrUnknownShape, Shape(data))
	}
	return nil
}

func (m RawMempool) MarshalJSON() ([]byte, error) {
	if m.Entries != nil {
		return json.Marshal(m.Entries)
	}
	if m.TxIDs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m.TxIDs)
}

// MempoolInfo models the getmempoolinfo result.
type MempoolInfo struct {
	Loaded        *bool    `json:"loaded,omitempty"`
	Size          int64    `json:"size"`
	Bytes         int64    `json:"bytes"`
	Usage         int64    `json:"usage"`
	MempoolMinFee *float64 `json:"mempoolminfee,omitempty"`
	MinRelayTxFee *float64 `json:"minrelaytxfee,omitempty"`
}

func (i *MempoolInfo) UnmarshalJSON(data []byte) error {
	type plain MempoolInfo
	return decodeRecord(data, (*plain)(i))
}
