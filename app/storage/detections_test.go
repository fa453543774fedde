package storage

import (
	"context"
	"fmt"
	"time"
)

func (s *StorageTestSuite) TestDetections_WriteRead() {
	ctx := context.Background()
	for dbType, db := range s.dbs {
		s.Run(fmt.Sprintf("with %s", dbType), func() {
			d, err := NewDetections(ctx, db)
			s.Require().NoError(err)

			ts := time.Date(2024, 12, 24, 10, 0, 0, 0, time.UTC)
			s.Require().NoError(d.Write(ctx, Detection{Timestamp: ts, Message: "free viagra", Probability: 0.99,
				Details: "naive bayes"}))
			s.Require().NoError(d.Write(ctx, Detection{Timestamp: ts.Add(time.Minute), Message: "xxx deals",
				Probability: 0.75}))
			s.Require().NoError(d.Write(ctx, Detection{Message: "bitcoin academy", Probability: 0.6}))

			res, err := d.Read(ctx, 0)
			s.Require().NoError(err)
			s.Require().Len(res, 3)
			s.Equal("bitcoin academy", res[0].Message, "zero timestamp set to now, newest")
			s.Equal("xxx deals", res[1].Message)
			s.Equal("free viagra", res[2].Message)
			s.InDelta(0.99, res[2].Probability, 1e-9)
			s.Equal("naive bayes", res[2].Details)
			s.True(ts.Equal(res[2].Timestamp), "%v vs %v", ts, res[2].Timestamp)
			s.WithinDuration(time.Now(), res[0].Timestamp, time.Minute)

			res, err = d.Read(ctx, 2)
			s.Require().NoError(err)
			s.Require().Len(res, 2)
			s.Equal("bitcoin academy", res[0].Message)
			s.Equal("xxx deals", res[1].Message)
		})
	}
}

func (s *StorageTestSuite) TestDetections_Empty() {
	ctx := context.Background()
	for dbType, db := range s.dbs {
		s.Run(fmt.Sprintf("with %s", dbType), func() {
			d, err := NewDetections(ctx, db)
			s.Require().NoError(err)
			res, err := d.Read(ctx, 10)
			s.Require().NoError(err)
			s.Empty(res)
		})
	}
}
