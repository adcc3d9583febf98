package model

// UsageCategory classifies how a transaction's spend is used.
type UsageCategory string

const (
	UsageBusiness     UsageCategory = "business"
	UsagePersonal     UsageCategory = "personal"
	UsageApportioned  UsageCategory = "apportioned"
	UsageUnclassified UsageCategory = "unclassified"
)
