package api

import (
	"encoding/json"
	"errors"
	"testing"

	"music_library/internal/apperr"
	"music_library/internal/repository"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingError_NamesFieldsOnce(t *testing.T) {
	RegisterValidators()

	req := AddTrackRequest{ArtistID: "nope"}
	err := binding.Validator.ValidateStruct(&req)
	require.Error(t, err)

	got := apperr.From(bindingError(err))
	assert.Equal(t, apperr.KindBadRequest, got.Kind)
	assert.Equal(t, "Bad Request, Reason: artist_id, album_id, name, duration.", got.Message)
}

func TestBindingError_TypeMismatch(t *testing.T) {
	var req AddArtistRequest
	err := json.Unmarshal([]byte(`{"name":"x","grammy":"many"}`), &req)
	require.Error(t, err)

	assert.Equal(t, "Bad Request, Reason: grammy.", bindingError(err).Error())
	assert.Equal(t, "Bad Request.", bindingError(errors.New("EOF")).Error())
}

func TestNotFutureYear(t *testing.T) {
	RegisterValidators()

	past, future := 1999, 9999
	assert.NoError(t, binding.Validator.ValidateStruct(&UpdateAlbumRequest{Year: &past}))
	assert.Error(t, binding.Validator.ValidateStruct(&UpdateAlbumRequest{Year: &future}))
}

func TestPageQuery(t *testing.T) {
	assert.Equal(t, repository.Page{Limit: 3, Offset: 9}, pageQuery{Limit: 3, Offset: 9}.page())
	assert.Equal(t, []string{"l5", "o0"}, pageQuery{}.cacheParts())
}

func TestParseHidden(t *testing.T) {
	assert.Nil(t, parseHidden(""))
	assert.True(t, *parseHidden("true"))
	assert.False(t, *parseHidden("false"))
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)

	cfg := corsConfig([]string{"https://app.example.com"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowOrigins)
}
