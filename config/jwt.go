package config

import "time"

// Jwt 令牌配置。Enabled 为 false 时服务以单用户模式运行，
// 不挂载 /register /login，笔记接口不做属主校验。
type Jwt struct {
	Enabled       bool   `json:"enabled" yaml:"enabled"`
	Secret        string `json:"secret" yaml:"secret"`
	ExpireMinutes int    `json:"expire_minutes" yaml:"expire_minutes"`
}

func (j *Jwt) Expire() time.Duration {
	if j.ExpireMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(j.ExpireMinutes) * time.Minute
}
