package pivxjson

// StakingStatus models the getstakingstatus result. The lastattempt fields
// are absent until the wallet has tried to stake.
type StakingStatus struct {
	StakingStatus       bool    `json:"staking_status"`
	StakingEnabled      bool    `json:"staking_enabled"`
	ColdStakingEnabled  bool    `json:"coldstaking_enabled"`
	HaveConnections     bool    `json:"haveconnections"`
	MnSync              bool    `json:"mnsync"`
	WalletUnlocked      bool    `json:"walletunlocked"`
	StakeableCoins      int64   `json:"stakeablecoins"`
	StakingBalance      float64 `json:"stakingbalance"`
	StakeSplitThreshold float64 `json:"stakesplitthreshold"`
	LastAttemptAge      *int64  `json:"lastattempt_age,omitempty"`
	LastAttemptDepth    *int64  `json:"lastattempt_depth,omitempty"`
	LastAttemptHash     *string `json:"lastattempt_hash,omitempty"`
	LastAttemptCoins    *int64  `json:"lastattempt_coins,omitempty"`
	LastAttemptTries    *int64  `json:"lastattempt_tries,omitempty"`
}

func (s *StakingStatus) UnmarshalJSON(data []byte) error {
	type plain StakingStatus
	return decodeRecord(data, (*plain)(s))
}

// ColdUtxo is a cold-staking delegation output from listcoldutxos.
type ColdUtxo struct {
	Txid          string  `json:"txid"`
	TxidN         uint32  `json:"txidn"`
	Amount        float64 `json:"amount"`
	Confirmations int64   `json:"confirmations"`
	ColdStaker    string  `json:"cold-staker"`
	CoinOwner     string  `json:"coin-owner"`
	Whitelisted   bool    `json:"whitelisted"`
}

func (u *ColdUtxo) UnmarshalJSON(data []byte) error {
	type plain ColdUtxo
	return decodeRecord(data, (*plain)(u))
}
