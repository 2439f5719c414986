package pivxjson

import (
	"encoding/json"
	"fmt"
)

// ScriptSig is the signature script of a spending input.
type ScriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`
}

func (s *ScriptSig) UnmarshalJSON(data []byte) error {
	type plain ScriptSig
	return decodeRecord(data, (*plain)(s))
}

// ScriptPubKey is the locking script of an output.
type ScriptPubKey struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex"`
	ReqSigs   *int64   `json:"reqSigs,omitempty"`
	Type      *string  `json:"type,omitempty"`
	Addresses []string `json:"addresses,omitempty"`
}

func (s *ScriptPubKey) UnmarshalJSON(data []byte) error {
	type plain ScriptPubKey
	return decodeRecord(data, (*plain)(s))
}

// Vout is a transaction output.
type Vout struct {
	Value        float64      `json:"value"`
	N            int32        `json:"n"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`
}

func (v *Vout) UnmarshalJSON(data []byte) error {
	type plain Vout
	return decodeRecord(data, (*plain)(v))
}

// CoinbaseInput is the input of a block-reward transaction. It references no
// prior output.
type CoinbaseInput struct {
	Coinbase string `json:"coinbase"`
	Sequence uint32 `json:"sequence"`
}

// PrevoutInput spends an existing output.
type PrevoutInput struct {
	Txid      string    `json:"txid"`
	Vout      uint32    `json:"vout"`
	ScriptSig ScriptSig `json:"scriptSig"`
	Sequence  uint32    `json:"sequence"`
}

// VinKind tells which variant a Vin holds.
type VinKind int

const (
	VinUnknown VinKind = iota
	VinCoinbase
	VinPrevout
)

func (k VinKind) String() string {
	switch k {
	case VinCoinbase:
		return "coinbase"
	case VinPrevout:
		return "prevout"
	}
	return "unknown"
}

// Vin is a transaction input: exactly one of Coinbase or Prevout is set.
type Vin struct {
	Coinbase *CoinbaseInput
	Prevout  *PrevoutInput
}

func (v Vin) Kind() VinKind {
	switch {
	case v.Coinbase != nil:
		return VinCoinbase
	case v.Prevout != nil:
		return VinPrevout
	}
	return VinUnknown
}

func (v Vin) IsCoinBase() bool {
	return v.Coinbase != nil
}

// UnmarshalJSON selects the variant by field presence: a coinbase script
// without a prior output reference is a coinbase input, a txid/vout pair is a
// prevout input. Anything else, including both at once, is rejected.
func (v *Vin) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return fmt.Errorf("vin: %w: want object, got %s", ErrUnknownShape, Shape(data))
	}
	_, hasCoinbase := fields["coinbase"]
	_, hasTxid := fields["txid"]
	_, hasVout := fields["vout"]

	switch {
	case hasCoinbase && !hasTxid:
		type plain CoinbaseInput
		var in plain
		if err := decodeRecord(data, &in); err != nil {
			return fmt.Errorf("vin: %w", err)
		}
		*v = Vin{Coinbase: (*CoinbaseInput)(&in)}
	case hasTxid && hasVout && !hasCoinbase:
		type plain PrevoutInput
		var in plain
		if err := decodeRecord(data, &in); err != nil {
			return fmt.Errorf("vin: %w", err)
		}
		*v = Vin{Prevout: (*PrevoutInput)(&in)}
	default:
		return fmt.Errorf("vin: %w: neither a coinbase nor a prevout input", ErrUnknownShape)
	}
	return nil
}

func (v Vin) MarshalJSON() ([]byte, error) {
	switch {
	case v.Coinbase != nil:
		return json.Marshal(v.Coinbase)
	case v.Prevout != nil:
		return json.Marshal(v.Prevout)
	}
	return nil, fmt.Errorf("vin: %w: empty variant", ErrUnknownShape)
}

// ShieldSpend is a sapling spend description.
type ShieldSpend struct {
	CV           string `json:"cv"`
	Anchor       string `json:"anchor"`
	Nullifier    string `json:"nullifier"`
	RK           string `json:"rk"`
	Proof        string `json:"proof"`
	SpendAuthSig string `json:"spendAuthSig"`
}

// ShieldOutput is a sapling output description.
type ShieldOutput struct {
	CV            string `json:"cv"`
	CMU           string `json:"cmu"`
	EphemeralKey  string `json:"ephemeralKey"`
	EncCiphertext string `json:"encCiphertext"`
	OutCiphertext string `json:"outCiphertext"`
	Proof         string `json:"proof"`
}

// RawTransaction is the verbose form of a transaction, as returned by
// getrawtransaction with verbose set and inside verbose getblock results.
type RawTransaction struct {
	Txid              string         `json:"txid"`
	Version           int32          `json:"version"`
	Type              *int32         `json:"type,omitempty"`
	Size              int64          `json:"size"`
	LockTime          uint32         `json:"locktime"`
	Vin               []Vin          `json:"vin"`
	Vout              []Vout         `json:"vout"`
	Hex               string         `json:"hex"`
	ValueBalance      *float64       `json:"valueBalance,omitempty"`
	ValueBalanceSat   *int64         `json:"valueBalanceSat,omitempty"`
	ShieldSpends      []ShieldSpend  `json:"vShieldSpend,omitempty"`
	ShieldOutputs     []ShieldOutput `json:"vShieldOutput,omitempty"`
	BindingSig        *string        `json:"bindingSig,omitempty"`
	ShieldedAddresses []string       `json:"shielded_addresses,omitempty"`
	ExtraPayloadSize  *int64         `json:"extraPayloadSize,omitempty"`
	ExtraPayload      *string        `json:"extraPayload,omitempty"`
	BlockHash         *string        `json:"blockhash,omitempty"`
	Confirmations     *int64         `json:"confirmations,omitempty"`
	Time              *int64         `json:"time,omitempty"`
	BlockTime         *int64         `json:"blocktime,omitempty"`
}

func (t *RawTransaction) UnmarshalJSON(data []byte) error {
	type plain RawTransaction
	return decodeRecord(data, (*plain)(t))
}

// RawTransactionReply is the getrawtransaction result: a hex string when the
// node answered the non-verbose form, a decoded transaction otherwise.
type RawTransactionReply struct {
	Hex  string
	Info *RawTransaction
}

func (r RawTransactionReply) Verbose() bool {
	return r.Info != nil
}

func (r *RawTransactionReply) UnmarshalJSON(data []byte) error {
	switch Shape(data) {
	case "string":
		var hex string
		if err := json.Unmarshal(data, &hex); err != nil {
			return err
		}
		*r = RawTransactionReply{Hex: hex}
	case "object":
		var info RawTransaction
		if err := json.Unmarshal(data, &info); err != nil {
			return err
		}
		*r = RawTransactionReply{Hex: info.Hex, Info: &info}
	default:
		return fmt.Errorf("getrawtransaction: %w: got %s", ErrUnknownShape, Shape(data))
	}
	return nil
}

func (r RawTransactionReply) MarshalJSON() ([]byte, error) {
	if r.Info != nil {
		return json.Marshal(r.Info)
	}
	return json.Marshal(r.Hex)
}

// BlockTxList is the tx field of a block: ids for the plain verbose form,
// full transactions when the node expands them. An empty list decodes as ids.
type BlockTxList struct {
	IDs []string
	Txs []RawTransaction
}

func (l BlockTxList) Len() int {
	if l.Txs != nil {
		return len(l.Txs)
	}
	return len(l.IDs)
}

// TxIDs returns the transaction ids regardless of the variant.
func (l BlockTxList) TxIDs() []string {
	if l.Txs == nil {
		return l.IDs
	}
	ids := make([]string, 0, len(l.Txs))
	for _, tx := range l.Txs {
		ids = append(ids, tx.Txid)
	}
	return ids
}

func (l *BlockTxList) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return fmt.Errorf("block tx: %w: want array, got %s", ErrUnknownShape, Shape(data))
	}
	if len(items) == 0 {
		*l = BlockTxList{IDs: []string{}}
		return nil
	}
	switch Shape(items[0]) {
	case "string":
		ids := make([]string, len(items))
		for i, item := range items {
			if err := json.Unmarshal(item, &ids[i]); err != nil {
				return fmt.Errorf("block tx %d: %w: mixed element shapes", i, ErrUnknownShape)
			}
		}
		*l = BlockTxList{IDs: ids}
	case "object":
		txs := make([]RawTransaction, len(items))
		for i, item := range items {
			if Shape(item) != "object" {
				return fmt.Errorf("block tx %d: %w: mixed element shapes", i, ErrUnknownShape)
			}
			if err := json.Unmarshal(item, &txs[i]); err != nil {
				return fmt.Errorf("block tx %d: %w", i, err)
			}
		}
		*l = BlockTxList{Txs: txs}
	default:
		return fmt.Errorf("block tx: %w: element is %s", ErrUnknownShape, Shape(items[0]))
	}
	return nil
}

func (l BlockTxList) MarshalJSON() ([]byte, error) {
	if l.Txs != nil {
		return json.Marshal(l.Txs)
	}
	if l.IDs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.IDs)
}

// TxOut models a populated gettxout result.
type TxOut struct {
	BestBlock     string       `json:"bestblock"`
	Confirmations int64        `json:"confirmations"`
	Value         float64      `json:"value"`
	ScriptPubKey  ScriptPubKey `json:"scriptPubKey"`
	Coinbase      bool         `json:"coinbase"`
}

func (o *TxOut) UnmarshalJSON(data []byte) error {
	type plain TxOut
	return decodeRecord(data, (*plain)(o))
}

// TxOutReply is the gettxout result. A nil Out means the node answered null:
// the output does not exist or is already spent.
type TxOutReply struct {
	Out *TxOut
}

func (r TxOutReply) Found() bool {
	return r.Out != nil
}

func (r *TxOutReply) UnmarshalJSON(data []byte) error {
	if IsNull(data) {
		*r = TxOutReply{}
		return nil
	}
	if Shape(data) != "object" {
		return fmt.Errorf("gettxout: %w: got %s", ErrUnknownShape, Shape(data))
	}
	var out TxOut
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*r = TxOutReply{Out: &out}
	return nil
}

func (r TxOutReply) MarshalJSON() ([]byte, error) {
	if r.Out == nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.Out)
}

// TxInput references an output to spend in createrawtransaction.
type TxInput struct {
	Txid     string  `json:"txid"`
	Vout     uint32  `json:"vout"`
	Sequence *uint32 `json:"sequence,omitempty"`
}

// PrevTx describes a previous output for signrawtransaction.
type PrevTx struct {
	Txid         string  `json:"txid"`
	Vout         uint32  `json:"vout"`
	ScriptPubKey string  `json:"scriptPubKey"`
	RedeemScript *string `json:"redeemScript,omitempty"`
	Amount       float64 `json:"amount"`
}

// SignedTx models the signrawtransaction result.
type SignedTx struct {
	Hex      string `json:"hex"`
	Complete bool   `json:"complete"`
}

func (s *SignedTx) UnmarshalJSON(data []byte) error {
	type plain SignedTx
	return decodeRecord(data, (*plain)(s))
}
