// Copyright 2025 The api-kit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package urltemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgValues(t *testing.T) {
	t.Parallel()

	t.Run("nil args", func(t *testing.T) {
		t.Parallel()
		got, err := argValues(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("struct with tags and fallback names", func(t *testing.T) {
		t.Parallel()
		type args struct {
			RoomID string `path:"room_id"`
			Limit  int
			Skip   string `path:"-"`
		}
		got, err := argValues(args{RoomID: "r1", Limit: 5, Skip: "no"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"room_id": "r1", "Limit": "5"}, got)
	})

	t.Run("embedded structs are flattened", func(t *testing.T) {
		t.Parallel()
		type Common struct {
			Owner string `path:"owner"`
		}
		type args struct {
			Common
			ID string `path:"id"`
		}
		got, err := argValues(args{Common: Common{Owner: "me"}, ID: "7"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"owner": "me", "id": "7"}, got)
	})

	t.Run("nil pointer fields are absent", func(t *testing.T) {
		t.Parallel()
		type args struct {
			ID   *string `path:"id"`
			Name *string `path:"name"`
		}
		id := "9"
		got, err := argValues(args{ID: &id})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"id": "9"}, got)
	})

	t.Run("pointer to struct", func(t *testing.T) {
		t.Parallel()
		type args struct {
			ID string `path:"id"`
		}
		got, err := argValues(&args{ID: "3"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"id": "3"}, got)
	})

	t.Run("unconvertible value fails", func(t *testing.T) {
		t.Parallel()
		type args struct {
			Blob chan int `path:"blob"`
		}
		_, err := argValues(args{Blob: make(chan int)})
		require.ErrorIs(t, err, ErrValueNotSupported)
	})

	t.Run("non-string map keys fail", func(t *testing.T) {
		t.Parallel()
		_, err := argValues(map[int]string{1: "x"})
		require.ErrorIs(t, err, ErrUnsupportedArgs)
	})

	t.Run("scalar args fail", func(t *testing.T) {
		t.Parallel()
		_, err := argValues("nope")
		require.ErrorIs(t, err, ErrUnsupportedArgs)
	})
}
