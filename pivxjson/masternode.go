package pivxjson

// MasternodeCount models the getmasternodecount result.
type MasternodeCount struct {
	Total   int32 `json:"total"`
	Stable  int32 `json:"stable"`
	Enabled int32 `json:"enabled"`
	InQueue int32 `json:"inqueue"`
	IPv4    int32 `json:"ipv4"`
	IPv6    int32 `json:"ipv6"`
	Onion   int32 `json:"onion"`
}

func (c *MasternodeCount) UnmarshalJSON(data []byte) error {
	type plain MasternodeCount
	return decodeRecord(data, (*plain)(c))
}

// MasternodeEntry is one row of listmasternodes.
type MasternodeEntry struct {
	Rank       int32   `json:"rank"`
	Type       string  `json:"type"`
	Network    string  `json:"network"`
	TxHash     string  `json:"txhash"`
	OutIdx     int32   `json:"outidx"`
	PubKey     string  `json:"pubkey"`
	Status     string  `json:"status"`
	Addr       string  `json:"addr"`
	Version    int64   `json:"version"`
	LastSeen   int64   `json:"lastseen"`
	ActiveTime int64   `json:"activetime"`
	LastPaid   float64 `json:"lastpaid"`
}

func (e *MasternodeEntry) UnmarshalJSON(data []byte) error {
	type plain MasternodeEntry
	return decodeRecord(data, (*plain)(e))
}
