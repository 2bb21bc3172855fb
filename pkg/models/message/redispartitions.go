package message

import "fmt"

const topicNumber = 5

// RedisPartition is one task list that a single engine worker owns at a time.
type RedisPartition int

func (r RedisPartition) ListKey() string {
	return fmt.Sprintf("blokus:partition:%d", r)
}

func (r RedisPartition) OwnerKey() string {
	return fmt.Sprintf("blokus:partition:%d:owner", r)
}

func (r RedisPartition) LockName() string {
	return fmt.Sprintf("blokus:partition:%d:lock", r)
}

var RedisPartitions []RedisPartition

func init() {
	for i := range topicNumber {
		RedisPartitions = append(RedisPartitions, RedisPartition(i+1))
	}
}
