package pivxjson

import "github.com/btcsuite/btcd/btcutil"

// Monetary fields stay float64 on the wire types to match the node's schema.
// These accessors convert to satoshis on request.

// Amount converts a coin value into satoshis, rounding to the nearest unit.
func Amount(coins float64) (btcutil.Amount, error) {
	return btcutil.NewAmount(coins)
}

func (v Vout) Amount() (btcutil.Amount, error) {
	return Amount(v.Value)
}

func (o TxOut) Amount() (btcutil.Amount, error) {
	return Amount(o.Value)
}

func (u ColdUtxo) AmountSat() (btcutil.Amount, error) {
	return Amount(u.Amount)
}

func (e MempoolEntry) FeeSat() (btcutil.Amount, error) {
	return Amount(e.Fee)
}
