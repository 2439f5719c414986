package pivxjson

// ShieldPoolValue is the shielded pool balance attached to headers and chain info.
type ShieldPoolValue struct {
	ChainValue float64 `json:"chainValue"`
	ValueDelta float64 `json:"valueDelta"`
}

func (v *ShieldPoolValue) UnmarshalJSON(data []byte) error {
	type plain ShieldPoolValue
	return decodeRecord(data, (*plain)(v))
}

// BlockHeader models the getblockheader result.
type BlockHeader struct {
	Hash              string           `json:"hash"`
	Confirmations     int64            `json:"confirmations"`
	Height            int64            `json:"height"`
	Version           int32            `json:"version"`
	MerkleRoot        string           `json:"merkleroot"`
	Time              int64            `json:"time"`
	MedianTime        int64            `json:"mediantime"`
	Nonce             int64            `json:"nonce"`
	Bits              string           `json:"bits"`
	Difficulty        float64          `json:"difficulty"`
	ChainWork         string           `json:"chainwork"`
	AccCheckpoint     *string          `json:"acc_checkpoint,omitempty"`
	ShieldPoolValue   *ShieldPoolValue `json:"shield_pool_value,omitempty"`
	PreviousBlockHash *string          `json:"previousblockhash,omitempty"`
	NextBlockHash     *string          `json:"nextblockhash,omitempty"`
}

func (h *BlockHeader) UnmarshalJSON(data []byte) error {
	type plain BlockHeader
	return decodeRecord(data, (*plain)(h))
}

// Block models the getblock result. Tx holds either transaction ids or full
// transactions depending on what the node sent.
type Block struct {
	Hash              string      `json:"hash"`
	Confirmations     int64       `json:"confirmations"`
	Size              int64       `json:"size"`
	Height            int64       `json:"height"`
	Version           int32       `json:"version"`
	MerkleRoot        string      `json:"merkleroot"`
	AccCheckpoint     *string     `json:"acc_checkpoint,omitempty"`
	FinalSaplingRoot  *string     `json:"finalsaplingroot,omitempty"`
	Tx                BlockTxList `json:"tx"`
	Time              int64       `json:"time"`
	MedianTime        int64       `json:"mediantime"`
	Nonce             int64       `json:"nonce"`
	Bits              string      `json:"bits"`
	Difficulty        float64     `json:"difficulty"`
	ChainWork         string      `json:"chainwork"`
	PreviousBlockHash *string     `json:"previousblockhash,omitempty"`
	NextBlockHash     *string     `json:"nextblockhash,omitempty"`
	StakeModifier     *string     `json:"stakemodifier,omitempty"`
	HashProofOfStake  *string     `json:"hashproofofstake,omitempty"`
}

func (b *Block) UnmarshalJSON(data []byte) error {
	type plain Block
	return decodeRecord(data, (*plain)(b))
}

// Softfork is one entry of getblockchaininfo's softforks list.
type Softfork struct {
	ID      string `json:"id"`
	Version int32  `json:"version"`
	Reject  struct {
		Status bool `json:"status"`
	} `json:"reject"`
}

func (s *Softfork) UnmarshalJSON(data []byte) error {
	type plain Softfork
	return decodeRecord(data, (*plain)(s))
}

// Upgrade describes a network upgrade activation.
type Upgrade struct {
	ActivationHeight int64  `json:"activationheight"`
	Status           string `json:"status"`
	Info             string `json:"info"`
}

func (u *Upgrade) UnmarshalJSON(data []byte) error {
	type plain Upgrade
	return decodeRecord(data, (*plain)(u))
}

// BlockChainInfo models the getblockchaininfo result. Upgrades is keyed by
// the node's upgrade name ("PoS v2", "v5 shield", ...).
type BlockChainInfo struct {
	Chain                   string             `json:"chain"`
	Blocks                  int64              `json:"blocks"`
	Headers                 int64              `json:"headers"`
	BestBlockHash           string             `json:"bestblockhash"`
	Difficulty              float64            `json:"difficulty"`
	VerificationProgress    float64            `json:"verificationprogress"`
	ChainWork               string             `json:"chainwork"`
	ShieldPoolValue         *ShieldPoolValue   `json:"shield_pool_value,omitempty"`
	InitialBlockDownloading bool               `json:"initial_block_downloading"`
	Softforks               []Softfork         `json:"softforks,omitempty"`
	Upgrades                map[string]Upgrade `json:"upgrades,omitempty"`
	Warnings                string             `json:"warnings"`
}

func (i *BlockChainInfo) UnmarshalJSON(data []byte) error {
	type plain BlockChainInfo
	return decodeRecord(data, (*plain)(i))
}

// ChainTip is one entry of the getchaintips result.
type ChainTip struct {
	Height    int64  `json:"height"`
	Hash      string `json:"hash"`
	BranchLen int64  `json:"branchlen"`
	Status    string `json:"status"`
}

func (t *ChainTip) UnmarshalJSON(data []byte) error {
	type plain ChainTip
	return decodeRecord(data, (*plain)(t))
}

// TxOutSetInfo models the gettxoutsetinfo result.
type TxOutSetInfo struct {
	Height          int64   `json:"height"`
	BestBlock       string  `json:"bestblock"`
	Transactions    int64   `json:"transactions"`
	TxOuts          int64   `json:"txouts"`
	HashSerialized2 string  `json:"hash_serialized_2"`
	TotalAmount     float64 `json:"total_amount"`
	DiskSize        int64   `json:"disk_size"`
}

func (i *TxOutSetInfo) UnmarshalJSON(data []byte) error {
	type plain TxOutSetInfo
	return decodeRecord(data, (*plain)(i))
}

// Info models the getinfo result. Wallet fields are nil when the node runs
// without a wallet.
type Info struct {
	Version           int32    `json:"version"`
	ProtocolVersion   int32    `json:"protocolversion"`
	Services          *string  `json:"services,omitempty"`
	WalletVersion     *int32   `json:"walletversion,omitempty"`
	Balance           *float64 `json:"balance,omitempty"`
	StakingStatus     string   `json:"staking status"`
	Blocks            int64    `json:"blocks"`
	TimeOffset        int64    `json:"timeoffset"`
	Connections       int32    `json:"connections"`
	Proxy             string   `json:"proxy"`
	Difficulty        float64  `json:"difficulty"`
	Testnet           bool     `json:"testnet"`
	MoneySupply       float64  `json:"moneysupply"`
	TransparentSupply *float64 `json:"transparentsupply,omitempty"`
	ShieldSupply      *float64 `json:"shieldsupply,omitempty"`
	KeypoolOldest     *int64   `json:"keypoololdest,omitempty"`
	KeypoolSize       *int32   `json:"keypoolsize,omitempty"`
	PayTxFee          *float64 `json:"paytxfee,omitempty"`
	RelayFee          float64  `json:"relayfee"`
	Errors            string   `json:"errors"`
}

func (i *Info) UnmarshalJSON(data []byte) error {
	type plain Info
	return decodeRecord(data, (*plain)(i))
}

// MoneySupply models the getsupplyinfo result.
type MoneySupply struct {
	Update            int64   `json:"update"`
	TransparentSupply float64 `json:"transparentsupply"`
	ShieldSupply      float64 `json:"shieldsupply"`
	TotalSupply       float64 `json:"totalsupply"`
}

func (s *MoneySupply) UnmarshalJSON(data []byte) error {
	type plain MoneySupply
	return decodeRecord(data, (*plain)(s))
}
