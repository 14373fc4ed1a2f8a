package models

type PortalStats struct {
	ArticlesTotal  int `json:"articles_total"`
	PromosTotal    int `json:"promos_total"`
	ArticlesWeekly int `json:"articles_weekly"`
}
