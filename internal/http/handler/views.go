package handler

import (
	"time"

	"potshot/internal/core"
)

type potView struct {
	PotWei   string       `json:"potWei"`
	HouseWei string       `json:"houseWei"`
	Paused   bool         `json:"paused"`
	Sponsor  *sponsorView `json:"sponsor,omitempty"`
}

type sponsorView struct {
	Sponsor string `json:"sponsor"`
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
}

type rulesView struct {
	StakeWei        string `json:"stakeWei"`
	FirstStakeWei   string `json:"firstStakeWei"`
	SponsorFeeWei   string `json:"sponsorFeeWei"`
	MinPotWei       string `json:"minPotWei"`
	CooldownSeconds uint64 `json:"cooldownSeconds"`
	WinShareBP      uint64 `json:"winShareBp"`
	HouseShareBP    uint64 `json:"houseShareBp"`
	WinChanceBP     uint64 `json:"winChanceBp"`
	MaxWinners      int    `json:"maxWinners"`
}

type commitmentView struct {
	Digest    string `json:"digest"`
	Height    uint64 `json:"height"`
	AmountWei string `json:"amountWei"`
}

type playerView struct {
	Address          string          `json:"address"`
	Shots            uint64          `json:"shots"`
	TotalSpentWei    string          `json:"totalSpentWei"`
	TotalWonWei      string          `json:"totalWonWei"`
	CooldownSeconds  float64         `json:"cooldownSeconds"`
	PendingPayoutWei string          `json:"pendingPayoutWei"`
	Commitment       *commitmentView `json:"commitment,omitempty"`
}

type winnerView struct {
	Address   string    `json:"address"`
	AmountWei string    `json:"amountWei"`
	Height    uint64    `json:"height"`
	WonAt     time.Time `json:"wonAt"`
}

type revealView struct {
	Win       bool   `json:"win"`
	Roll      uint64 `json:"roll"`
	AmountWei string `json:"amountWei,omitempty"`
	Paid      bool   `json:"paid"`
	Height    uint64 `json:"height"`
}

func newRevealView(result core.RevealResult) revealView {
	view := revealView{
		Win:    result.Win,
		Roll:   result.Roll,
		Paid:   result.Paid,
		Height: result.Height,
	}
	if result.Amount != nil {
		view.AmountWei = result.Amount.Dec()
	}

	return view
}

func newRulesView(rules core.Rules) rulesView {
	return rulesView{
		StakeWei:        rules.StakeWei.Dec(),
		FirstStakeWei:   rules.FirstStakeWei.Dec(),
		SponsorFeeWei:   rules.SponsorFeeWei.Dec(),
		MinPotWei:       rules.MinPotWei.Dec(),
		CooldownSeconds: uint64(rules.Cooldown / time.Second),
		WinShareBP:      rules.WinShareBP,
		HouseShareBP:    rules.HouseShareBP,
		WinChanceBP:     rules.WinChanceBP,
		MaxWinners:      rules.MaxWinners,
	}
}

func newWinnerViews(records []core.WinnerRecord) []winnerView {
	views := make([]winnerView, 0, len(records))
	for _, record := range records {
		views = append(views, winnerView{
			Address:   record.Player.Hex(),
			AmountWei: record.Amount.Dec(),
			Height:    record.Height,
			WonAt:     record.When,
		})
	}

	return views
}
