package entity

type OTPCode struct {
	BaseSimple
	Phone  string `db:"phone"`
	Code   string `db:"code"`
	IsUsed bool   `db:"is_used"`
}
