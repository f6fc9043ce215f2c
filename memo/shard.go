package memo

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// hash picks a shard for a key. Common kinds are hashed from their bytes;
// the kind is mixed in so that 1 and int64(1) may land apart, as they are
// different keys anyway.
func hash(k Key) uint64 {
	switch k := k.(type) {
	case string:
		return xxhash.Sum64String(k)
	case stringerKey:
		return xxhash.Sum64String(string(k))
	case int:
		return hashWord(reflect.Int, uint64(k))
	case int8:
		return hashWord(reflect.Int8, uint64(k))
	case int16:
		return hashWord(reflect.Int16, uint64(k))
	case int32:
		return hashWord(reflect.Int32, uint64(k))
	case int64:
		return hashWord(reflect.Int64, uint64(k))
	case uint:
		return hashWord(reflect.Uint, uint64(k))
	case uint8:
		return hashWord(reflect.Uint8, uint64(k))
	case uint16:
		return hashWord(reflect.Uint16, uint64(k))
	case uint32:
		return hashWord(reflect.Uint32, uint64(k))
	case uint64:
		return hashWord(reflect.Uint64, k)
	case uintptr:
		return hashWord(reflect.Uintptr, uint64(k))
	case bool:
		if k {
			return hashWord(reflect.Bool, 1)
		}
		return hashWord(reflect.Bool, 0)
	case floatKey:
		var d xxhash.Digest
		d.Reset()
		var b [16]byte
		binary.LittleEndian.PutUint64(b[:8], k.re)
		binary.LittleEndian.PutUint64(b[8:], k.im)
		_, _ = d.Write(b[:])
		_, _ = d.WriteString(k.typ.String())
		return d.Sum64()
	default:
		return xxhash.Sum64String(fmt.Sprintf("%T:%v", k, k))
	}
}

func hashWord(kind reflect.Kind, v uint64) uint64 {
	var b [9]byte
	b[0] = byte(kind)
	binary.LittleEndian.PutUint64(b[1:], v)
	return xxhash.Sum64(b[:])
}

// shardIndex routes a call to one of numShards tries by the key of its
// first argument. Equal keys always land on the same shard.
func shardIndex(first Key, numShards int) int {
	switch numShards {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return 0
	default:
		return int(hash(first) % uint64(numShards))
	}
}
