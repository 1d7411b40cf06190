// Package iox provides chunked and whole-stream reading helpers.
//
// ReadChunks turns an io.Reader into an iter.Seq2 of fixed-size chunks:
//
//	chunks, err := iox.ReadChunks(file, 64*1024)
//	if err != nil {
//	    return err
//	}
//	for chunk, err := range chunks {
//	    if err != nil {
//	        return err
//	    }
//	    process(chunk)
//	}
//
// ReadAll materializes a whole stream through a pooled buffer.
package iox
