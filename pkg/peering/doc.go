// Package peering loads VPC peering connections from AWS Config exports.
//
// # Input Format
//
// The loader reads the JSON produced by an AWS Config advanced query (or an
// aggregator query) over AWS::EC2::VPCPeeringConnection resources:
//
//	{
//	  "results": [
//	    {
//	      "resourceId": "pcx-0a1b2c3d",
//	      "accountId": "111111111111",
//	      "configuration": {
//	        "requesterVpcInfo": {"vpcId": "vpc-aaaa1111", "ownerId": "111111111111", "region": "us-east-1"},
//	        "accepterVpcInfo":  {"vpcId": "vpc-bbbb2222", "ownerId": "222222222222", "region": "us-west-2"}
//	      }
//	    }
//	  ]
//	}
//
// The CLI's select-resource-config returns each result as a JSON-encoded
// string rather than an object; both forms are accepted.
//
// # Validation
//
// Every result must carry resourceId, accountId and the vpcId/ownerId of both
// sides. A missing key fails the whole load with an
// [errors.ErrCodeMalformedRecord] error naming the result index and the
// missing path, e.g.:
//
//	MALFORMED_RECORD: result 3: missing configuration.accepterVpcInfo.vpcId
//
// Regions are optional and default to the empty string.
//
// [errors.ErrCodeMalformedRecord]: github.com/matzehuels/peermap/pkg/errors.ErrCodeMalformedRecord
package peering
