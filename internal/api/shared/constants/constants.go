package constants

const (
	MAX_SELL_ORDERS_PER_BATCH = 100
	MAX_ASSETS_PER_STATS      = 100
	MAX_OFFER_ID_LENGTH       = 128
	MAX_SECRET_LENGTH         = 256
	MAX_TRENDING_LIMIT        = 100
)
