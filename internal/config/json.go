package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// [Duration] fields that accept "30s"-style strings.
type StructuredJSONConfig struct {
	Security struct {
		PBKDF2Iterations int       `json:"pbkdf2_iterations"`
		RSAKeySize       int       `json:"rsa_key_size"`
		ChallengeTTL     *Duration `json:"challenge_ttl"`
		AuthSaltSize     int       `json:"auth_salt_size"`
		NoteSaltSize     int       `json:"note_salt_size"`
		ZKSaltSize       int       `json:"zk_salt_size"`
		CAKeyPath        string    `json:"ca_key_path"`
		CAIssuer         string    `json:"ca_issuer"`
	} `json:"security,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Admin struct {
		Username      string   `json:"username"`
		Password      string   `json:"password"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"admin,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ChallengeSweepInterval Duration `json:"challenge_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Security: Security{
			PBKDF2Iterations: jsonCfg.Security.PBKDF2Iterations,
			RSAKeySize:       jsonCfg.Security.RSAKeySize,
			AuthSaltSize:     jsonCfg.Security.AuthSaltSize,
			NoteSaltSize:     jsonCfg.Security.NoteSaltSize,
			ZKSaltSize:       jsonCfg.Security.ZKSaltSize,
			CAKeyPath:        jsonCfg.Security.CAKeyPath,
			CAIssuer:         jsonCfg.Security.CAIssuer,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Admin: Admin{
			Username:      jsonCfg.Admin.Username,
			Password:      jsonCfg.Admin.Password,
			TokenSignKey:  jsonCfg.Admin.TokenSignKey,
			TokenIssuer:   jsonCfg.Admin.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Admin.TokenDuration),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			ChallengeSweepInterval: time.Duration(jsonCfg.Workers.ChallengeSweepInterval),
		},
	}
	if jsonCfg.Security.ChallengeTTL != nil {
		cfg.Security.setChallengeTTL(time.Duration(*jsonCfg.Security.ChallengeTTL))
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
