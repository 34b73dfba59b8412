package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetters(t *testing.T) {
	cfg := map[string]string{
		"PORT":          "8080",
		"BAD_INT":       "eighty",
		"LOG_PRETTY":    "TRUE",
		"BAD_BOOL":      "sometimes",
		"READ_TIMEOUT":  "15",
		"ORIGINS":       " https://domp.mx, ,http://localhost:3000 ",
		"EMPTY_ORIGINS": "",
	}

	assert.Equal(t, "8080", GetString(cfg, "PORT", "80"))
	assert.Equal(t, "80", GetString(cfg, "MISSING", "80"))
	assert.Equal(t, "80", GetString(nil, "PORT", "80"))

	assert.Equal(t, 8080, GetInt(cfg, "PORT", 1))
	assert.Equal(t, 1, GetInt(cfg, "BAD_INT", 1))

	assert.True(t, GetBool(cfg, "LOG_PRETTY", false))
	assert.True(t, GetBool(cfg, "BAD_BOOL", true))
	assert.False(t, GetBool(cfg, "MISSING", false))

	assert.Equal(t, 15*time.Second, GetDuration(cfg, "READ_TIMEOUT", time.Second))
	assert.Equal(t, time.Second, GetDuration(cfg, "BAD_INT", time.Second))

	assert.Equal(t, []string{"https://domp.mx", "http://localhost:3000"}, GetList(cfg, "ORIGINS"))
	assert.Empty(t, GetList(cfg, "EMPTY_ORIGINS"))
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("DOMP_CONFIG_TEST", "a=b")
	cfg := New()
	assert.Equal(t, "a=b", cfg["DOMP_CONFIG_TEST"])
}

type fakeSSM struct {
	pages [][]types.Parameter
	calls int
	err   error
}

func (f *fakeSSM) GetParametersByPath(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := &ssm.GetParametersByPathOutput{Parameters: f.pages[f.calls]}
	f.calls++
	if f.calls < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func TestOverlaySSM(t *testing.T) {
	client := &fakeSSM{pages: [][]types.Parameter{
		{{Name: aws.String("/domp/prod/ADMIN_USER"), Value: aws.String("admin")}},
		{{Name: aws.String("/domp/prod/ADMIN_PASSWORD"), Value: aws.String("s3cret")}},
	}}
	cfg := map[string]string{"ADMIN_USER": "from-env", "PORT": "8080"}

	n, err := OverlaySSM(context.Background(), client, cfg, "/domp/prod")
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, 2, client.calls)
	assert.Equal(t, map[string]string{
		"ADMIN_USER":     "admin",
		"ADMIN_PASSWORD": "s3cret",
		"PORT":           "8080",
	}, cfg)
}

func TestOverlaySSMErrors(t *testing.T) {
	_, err := OverlaySSM(context.Background(), &fakeSSM{}, map[string]string{}, "domp/prod")
	require.Error(t, err)

	boom := errors.New("access denied")
	_, err = OverlaySSM(context.Background(), &fakeSSM{err: boom}, map[string]string{}, "/domp/prod")
	require.ErrorIs(t, err, boom)
}
