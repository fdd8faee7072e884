package error

// ErrCodeRateLimited identifies requests rejected by the rate limiter.
const ErrCodeRateLimited = "SRV-020001"
