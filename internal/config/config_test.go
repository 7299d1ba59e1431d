package config

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookswap_server/pkg/constants"
)

// 默认值在解码前填充：文件缺省的键回退默认值，显式写 0 的键保持 0
func TestJWTExpiryDefaults(t *testing.T) {
	t.Run("缺省键回退默认值", func(t *testing.T) {
		conf := defaultConfig()
		_, err := toml.Decode(`
[jwtConfig]
secret = "test-secret"
`, conf)
		require.NoError(t, err)
		assert.Equal(t, constants.ACCESS_TOKEN_EXPIRY_MIN, conf.JWTConfig.AccessTokenExpiry)
		assert.Equal(t, constants.REFRESH_TOKEN_EXPIRY_HOURS, conf.JWTConfig.RefreshTokenExpiry)
		assert.Equal(t, constants.INVITATION_EXPIRY_DAYS, conf.InvitationConfig.ExpiryDays)
	})

	t.Run("显式 0 有效期不被默认值覆盖", func(t *testing.T) {
		conf := defaultConfig()
		_, err := toml.Decode(`
[jwtConfig]
secret = "test-secret"
accessTokenExpiry = 0
`, conf)
		require.NoError(t, err)
		assert.Equal(t, 0, conf.JWTConfig.AccessTokenExpiry)
		assert.Equal(t, constants.REFRESH_TOKEN_EXPIRY_HOURS, conf.JWTConfig.RefreshTokenExpiry)
	})
}
