package domain

type BlockHeader struct {
	Number      uint64  `json:"number"`
	Hash        string  `json:"hash"`
	ParentHash  string  `json:"parent_hash"`
	Miner       string  `json:"miner"`
	GasUsed     uint64  `json:"gas_used"`
	GasLimit    uint64  `json:"gas_limit"`
	BaseFeeGwei float64 `json:"base_fee_gwei"`
	Timestamp   uint64  `json:"timestamp"`
}

type Head struct {
	Number uint64 `json:"number"`
}
