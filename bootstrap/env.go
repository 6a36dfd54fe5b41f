package bootstrap

import (
	"log"

	"github.com/spf13/viper"
)

type Env struct {
	AppEnv                string `mapstructure:"APP_ENV"`
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout        int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBUri                 string `mapstructure:"DB_URI"`
	DBName                string `mapstructure:"DB_NAME"`
	AccessTokenExpiryHour int    `mapstructure:"ACCESS_TOKEN_EXPIRY_HOUR"`
	AccessTokenSecret     string `mapstructure:"ACCESS_TOKEN_SECRET"`
	OperatorName          string `mapstructure:"OPERATOR_NAME"`
	OperatorPassword      string `mapstructure:"OPERATOR_PASSWORD"`
}

func NewEnv() *Env {
	env := Env{}
	viper.SetConfigFile(".env")

	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal("找不到 .env 配置文件: ", err)
	}

	err = viper.Unmarshal(&env)
	if err != nil {
		log.Fatal("配置文件解析失败: ", err)
	}

	if env.AppEnv == "development" {
		log.Println("当前运行在 development 模式")
	}
	return &env
}
