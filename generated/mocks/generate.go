package mocks

// mockgen rules for generating mocks for exported interfaces (reflection mode).
//go:generate sh -c "mockgen -package=index -destination=$GOPATH/src/$PACKAGE/index/index_mock.go $PACKAGE/index DeletedDocs,DocIDSetIterator"
//go:generate sh -c "mockgen -package=segment -destination=$GOPATH/src/$PACKAGE/segment/segment_mock.go $PACKAGE/segment ImmutableSegment,RecordIterator"
//go:generate sh -c "mockgen -package=search -destination=$GOPATH/src/$PACKAGE/search/search_mock.go $PACKAGE/search BlockProvider"
