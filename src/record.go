package cpw2gpx

/*------------------------------------------------------------------
 *
 * Purpose:	Decode the fixed size records of a CPW track log.
 *
 * Description:	Each record is 46 bytes, little endian, no padding:
 *
 *		 0  4	latitude * 1000000
 *		 4  4	longitude * 1000000
 *		 8  4	altitude, meters
 *		12  4	speed * 100
 *		16  4	distance interval * 100
 *		20  4	time interval * 10
 *		24  1	status; points whose status is 2 or 3 are bad
 *		25  1	heart rate
 *		26 22	unknown.  First byte is 0 on the last record
 *			of a session.
 *
 *------------------------------------------------------------------*/

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const RecordSize = 46

const reservedSize = 22

const (
	STATUS_BAD_2 uint8 = 2
	STATUS_BAD_3 uint8 = 3
)

var (
	ErrTruncated = errors.New("truncated record")
	ErrRead      = errors.New("read error")
)

// MicroDegrees is an angle in millionths of a degree, as stored on the device.
type MicroDegrees int32

func (m MicroDegrees) Degrees() float64 {
	return float64(m) / 1000000.0
}

// String renders exactly six decimals from the integer, so no float rounding creeps in.
func (m MicroDegrees) String() string {
	var v = int64(m)

	var sign = ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	return fmt.Sprintf("%s%d.%06d", sign, v/1000000, v%1000000)
}

type RawRecord struct {
	Latitude         MicroDegrees
	Longitude        MicroDegrees
	Altitude         int32 /* Meters. */
	Speed            int32 /* x 100 */
	DistanceInterval int32 /* Meters since previous point, x 100 */
	TimeInterval     int32 /* Tenths of a second since previous point. */
	Status           uint8
	HeartRate        uint8
	Reserved         [reservedSize]byte
}

/*------------------------------------------------------------------
 *
 * Function:	DecodeRecord
 *
 * Purpose:	Interpret one block of bytes as a record.
 *
 * Inputs:	b	- Exactly RecordSize bytes.
 *
 * Returns:	The record, or ErrTruncated if the length is wrong.
 *
 *------------------------------------------------------------------*/

func DecodeRecord(b []byte) (RawRecord, error) {
	var r RawRecord

	if len(b) != RecordSize {
		return r, fmt.Errorf("%w: got %d bytes, want %d", ErrTruncated, len(b), RecordSize)
	}

	var le = binary.LittleEndian

	r.Latitude = MicroDegrees(int32(le.Uint32(b[0:4])))
	r.Longitude = MicroDegrees(int32(le.Uint32(b[4:8])))
	r.Altitude = int32(le.Uint32(b[8:12]))
	r.Speed = int32(le.Uint32(b[12:16]))
	r.DistanceInterval = int32(le.Uint32(b[16:20]))
	r.TimeInterval = int32(le.Uint32(b[20:24]))
	r.Status = b[24]
	r.HeartRate = b[25]
	copy(r.Reserved[:], b[26:RecordSize])

	return r, nil
}

// Encode lays the record out exactly as DecodeRecord expects it.
func (r RawRecord) Encode() []byte {
	var b = make([]byte, RecordSize)

	var le = binary.LittleEndian

	le.PutUint32(b[0:4], uint32(r.Latitude))
	le.PutUint32(b[4:8], uint32(r.Longitude))
	le.PutUint32(b[8:12], uint32(r.Altitude))
	le.PutUint32(b[12:16], uint32(r.Speed))
	le.PutUint32(b[16:20], uint32(r.DistanceInterval))
	le.PutUint32(b[20:24], uint32(r.TimeInterval))
	b[24] = r.Status
	b[25] = r.HeartRate
	copy(b[26:RecordSize], r.Reserved[:])

	return b
}

// IsBad reports whether the device flagged the point as bad.
// Such points are still converted.
func (r RawRecord) IsBad() bool {
	return r.Status == STATUS_BAD_2 || r.Status == STATUS_BAD_3
}

// IsSentinel reports whether this is the last record of a session.
func (r RawRecord) IsSentinel() bool {
	return r.Reserved[0] == 0
}

func (r RawRecord) SpeedValue() float64 {
	return float64(r.Speed) / 100.0
}

func (r RawRecord) DistanceMeters() float64 {
	return float64(r.DistanceInterval) / 100.0
}

func (r RawRecord) TimeIntervalSeconds() float64 {
	return float64(r.TimeInterval) / 10.0
}

/*------------------------------------------------------------------
 *
 * Name:	RecordReader
 *
 * Purpose:	Pull one record at a time from a stream.
 *
 * Description:	A short read at the end, including a partial trailing
 *		block, is reported as io.EOF.  The device sometimes pads
 *		the file, so this is normal termination.
 *
 *------------------------------------------------------------------*/

type RecordReader struct {
	r     io.Reader
	buf   [RecordSize]byte
	count int
}

func NewRecordReader(r io.Reader) *RecordReader {
	return &RecordReader{r: r}
}

// Next returns the next record and its raw bytes.  The slice is only valid until the next call.
func (rr *RecordReader) Next() (RawRecord, []byte, error) {
	var _, err = io.ReadFull(rr.r, rr.buf[:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return RawRecord{}, nil, io.EOF
	}

	if err != nil {
		return RawRecord{}, nil, fmt.Errorf("%w: record %d: %w", ErrRead, rr.count, err)
	}

	var rec, decodeErr = DecodeRecord(rr.buf[:])
	if decodeErr != nil {
		return RawRecord{}, nil, decodeErr
	}

	rr.count++

	return rec, rr.buf[:], nil
}

// Count is the number of complete records read so far.
func (rr *RecordReader) Count() int {
	return rr.count
}
