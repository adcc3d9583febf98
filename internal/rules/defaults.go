package rules

import "github.com/shopspring/decimal"

// Default returns the built-in rule tables. Account labels use standard
// sole-proprietor bookkeeping names; the Amazon ratio is a provisional
// estimate and rows using it are flagged for manual review.
func Default() *Rules {
	return &Rules{
		Aliases: map[string]string{
			"AMAZON CO JP":           "AMAZON",
			"AMAZONCOM":              "AMAZON",
			"AMAZON DOWNLOADS":       "AMAZON DOWNLOAD",
			"AMAZON PRIME KAIHI":     "AMAZON PRIME",
			"AMAZON プライム会費":         "AMAZON PRIME",
			"GOOGLE GSUITE PARALLEL": "GOOGLE GSUITE",
			"GOOGLE GOOGLE ONE":      "GOOGLE ONE",
			"GOOGLE PLAY JAPAN":      "GOOGLE PLAY",
			"GO タクシーアプリ":            "GO TAXI",
			"ｷﾖｾｼｺﾜｰｷﾝｸﾞｽﾍﾟｰｽｺﾄﾘﾊﾞ":   "清瀬市コワーキングスペース",
			"ﾕ-ｳｴｱ":                  "ユニウェア",
			"Ｒｅｎｔｉｏ":                 "RNTIO",
			"ＡｎｏｔｈｅｒＡＤｒｅｓｓ":         "アナザーアドレス",
			"ＳＱ＊Ｄライフ":                "Dライフ",
			"ｅｌｉｆｅ":                  "イーライフ",
			"ﾌﾘｰ":                    "フリー",
		},
		Usage: UsageRules{
			Business: []string{
				"GOOGLE GSUITE", "BIZCOMFORT", "清瀬市コワーキングスペース", "MONOOQ",
				"フリー", "RNTIO", "FACEBOOK ADS", "GO TAXI",
			},
			Personal: []string{
				"クリニックフォア", "ニトリ", "ニンテンドーEショップ", "CHOKOZAP",
				"ミケネコカフェ清瀬店", "ZOZOTOWN", "メルカリ", "STARFLYER インターネット",
				"AGODA", "楽天", "DMM", "ユニクロ", "ユニクロ GU PLSTオンライン",
				"ユニウェア", "アナザーアドレス", "イーライフ", "CHEERZ", "モバイルSUICA",
				"Dライフ", "GOOGLE PLAY", "YOUTUBE PREMIUM", "UBER EATS",
				"AMAZON DOWNLOAD", "AMAZON PRIME", "GOOGLE ONE",
			},
			Apportioned: []string{"AMAZON", "LOOOPでんき"},
		},
		Accounts: AccountRules{
			Merchants: map[string]string{
				"GOOGLE GSUITE":  "communication expense",
				"BIZCOMFORT":     "rent",
				"清瀬市コワーキングスペース": "rent",
				"MONOOQ":         "supplies expense",
				"フリー":            "taxes and dues",
				"RNTIO":          "equipment rental",
				"FACEBOOK ADS":   "advertising expense",
				"AMAZON":         "supplies expense",
				"LOOOPでんき":       "utilities expense",
				"GO TAXI":        "travel expense",
			},
			PersonalRefund: "owner's capital contribution",
			PersonalCharge: "owner's capital withdrawal",
			Fallback:       "miscellaneous expense",
		},
		Ratios: map[string]Amount{
			"LOOOPでんき": {decimal.RequireFromString("0.40")},
			"AMAZON":   {decimal.RequireFromString("0.85")},
		},
		Provisional: []string{"AMAZON"},
		LowValue: LowValueRule{
			Merchant:  "AMAZON",
			Threshold: Amount{decimal.NewFromInt(1000)},
		},
	}
}
