package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/sink"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestSink(t *testing.T) {
	mr, err := miniredis.Run()
	require.Nil(t, err)
	defer mr.Close()
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := New(context.Background(), client, Options{Key: "fi", BatchSize: 2})
	require.Nil(t, s.Write(itemsets.Itemset{0, 1}, 4))
	require.False(t, mr.Exists("fi"))
	require.Nil(t, s.Write(itemsets.Itemset{0, 1, 2}, 2))
	require.True(t, mr.Exists("fi"))
	require.Nil(t, s.Write(itemsets.Itemset{3}, 7))
	require.Nil(t, s.Close())

	members, err := mr.ZMembers("fi")
	require.Nil(t, err)
	require.Equal(t, []string{"0 1 2", "0 1", "3"}, members)
	score, err := mr.ZScore("fi", "3")
	require.Nil(t, err)
	require.Equal(t, 7.0, score)
}

func TestSinkError(t *testing.T) {
	mr, err := miniredis.Run()
	require.Nil(t, err)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	var s sink.Sink = New(context.Background(), client, Options{})
	require.Nil(t, s.Write(itemsets.Itemset{1}, 1))
	require.NotNil(t, s.Close())
}
