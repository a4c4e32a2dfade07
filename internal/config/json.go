package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type JSONConfig struct {
	CoreAPI struct {
		Server   string `json:"server"`
		Username string `json:"username"`
		Password string `json:"password"`
		Token    string `json:"jwt_token"`
	} `json:"coreapi,omitempty"`

	Admin struct {
		Server   string `json:"server"`
		Login    string `json:"login"`
		Password string `json:"password"`
		RoleName string `json:"roles_name"`
	} `json:"admin,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Store struct {
		EnvFilePath string `json:"env_file"`
		TokenKey    string `json:"token_key"`
	} `json:"store,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		CoreAPI: CoreAPI{
			Server:   jsonCfg.CoreAPI.Server,
			Username: jsonCfg.CoreAPI.Username,
			Password: jsonCfg.CoreAPI.Password,
			Token:    jsonCfg.CoreAPI.Token,
		},
		Admin: Admin{
			Server:   jsonCfg.Admin.Server,
			Login:    jsonCfg.Admin.Login,
			Password: jsonCfg.Admin.Password,
			RoleName: jsonCfg.Admin.RoleName,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Store: Store{
			EnvFilePath: jsonCfg.Store.EnvFilePath,
			TokenKey:    jsonCfg.Store.TokenKey,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
